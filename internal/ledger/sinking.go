package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"stuffer/internal/model"
)

// Goal status labels. MonthsLeftStatus formats the remaining case.
const (
	StatusNoGoal      = "no goal"
	StatusGoalReached = "goal reached"
	StatusNoDate      = "no date"
	StatusOverdue     = "overdue"
)

// MonthsLeftStatus renders the countdown label for a funded goal.
func MonthsLeftStatus(months int) string {
	if months == 1 {
		return "1 month left"
	}
	return fmt.Sprintf("%d months left", months)
}

// ProjectGoal computes the required monthly savings rate for one envelope's
// sinking fund, given its all-time net balance. The decision table runs in
// order: no target, target already met, no deadline, deadline passed, and
// finally an even split over the calendar months remaining (floored at one,
// so a goal due in 20 days asks for one month's worth, not a blow-up).
func ProjectGoal(cat model.Category, balance decimal.Decimal, today time.Time) (decimal.Decimal, string) {
	switch {
	case !cat.TargetAmount.IsPositive():
		return decimal.Zero, StatusNoGoal
	case balance.GreaterThanOrEqual(cat.TargetAmount):
		return decimal.Zero, StatusGoalReached
	case cat.DueDate.IsZero():
		return decimal.Zero, StatusNoDate
	}
	missing := cat.TargetAmount.Sub(balance)
	if !cat.DueDate.After(today) {
		return missing, StatusOverdue
	}
	months := MonthsBetween(today, cat.DueDate)
	if months < 1 {
		months = 1
	}
	return missing.DivRound(decimal.NewFromInt(int64(months)), 2), MonthsLeftStatus(months)
}

// ProjectSinkingFunds evaluates every goal-bearing envelope against the full
// transaction log, in category sort order (priority, then name).
func ProjectSinkingFunds(txns []model.Transaction, cats []model.Category, today time.Time) []model.GoalProjection {
	var out []model.GoalProjection
	for _, cat := range cats {
		if !cat.HasGoal() {
			continue
		}
		balance := NetBalance(txns, cat.Name)
		rate, status := ProjectGoal(cat, balance, today)
		out = append(out, model.GoalProjection{
			Category:    cat.Name,
			Priority:    cat.Priority,
			Target:      cat.TargetAmount,
			Balance:     balance,
			MonthlyRate: rate,
			Status:      status,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TotalRequiredRate sums the monthly rates across all projections.
func TotalRequiredRate(ps []model.GoalProjection) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(p.MonthlyRate)
	}
	return total
}

// RateByPriority subtotals required monthly rates per priority tier.
func RateByPriority(ps []model.GoalProjection) map[model.Priority]decimal.Decimal {
	out := make(map[model.Priority]decimal.Decimal)
	for _, p := range ps {
		out[p.Priority] = out[p.Priority].Add(p.MonthlyRate)
	}
	return out
}
