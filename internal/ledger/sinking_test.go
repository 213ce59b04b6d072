package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"stuffer/internal/model"
)

func TestProjectGoal_DecisionTable(t *testing.T) {
	today := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		target     string
		due        time.Time
		balance    string
		wantRate   string
		wantStatus string
	}{
		{"no target", "0", time.Time{}, "100", "0", StatusNoGoal},
		{"reached exactly", "500", mustDate(t, "2025-12-01"), "500", "0", StatusGoalReached},
		{"over target", "500", time.Time{}, "600", "0", StatusGoalReached},
		{"no due date", "500", time.Time{}, "100", "0", StatusNoDate},
		{"due today", "500", today, "100", "400", StatusOverdue},
		{"past due", "500", mustDate(t, "2024-12-01"), "200", "300", StatusOverdue},
		{"five months out", "500", mustDate(t, "2025-08-20"), "100", "80", "5 months left"},
		{"due in twenty days", "300", mustDate(t, "2025-04-01"), "100", "200", "1 month left"},
		{"due later this month", "300", mustDate(t, "2025-03-25"), "100", "200", "1 month left"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := model.Category{Name: "Goal", TargetAmount: dec(tc.target), DueDate: tc.due}
			rate, status := ProjectGoal(cat, dec(tc.balance), today)
			if !rate.Equal(dec(tc.wantRate)) {
				t.Errorf("rate = %s, want %s", rate, tc.wantRate)
			}
			if status != tc.wantStatus {
				t.Errorf("status = %q, want %q", status, tc.wantStatus)
			}
		})
	}
}

func TestProjectGoal_RateRoundsToCents(t *testing.T) {
	today := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	cat := model.Category{TargetAmount: dec("100"), DueDate: mustDate(t, "2025-04-01")}
	rate, _ := ProjectGoal(cat, decimal.Zero, today)
	if !rate.Equal(dec("33.33")) {
		t.Fatalf("rate = %s, want 33.33", rate)
	}
}

func TestProjectSinkingFunds_UsesNetBalance(t *testing.T) {
	today := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	cats := []model.Category{
		{Name: "Vacation", TargetAmount: dec("900"), DueDate: mustDate(t, "2025-06-15"), Priority: model.PriorityMedium},
		{Name: "Groceries"}, // no goal, excluded
	}
	txns := []model.Transaction{
		{Type: model.Planned, Date: mustDate(t, "2025-01-01"), Category: "Vacation", Amount: dec("400"), BudgetMonth: "2025-01"},
		{Type: model.Actual, Date: mustDate(t, "2025-02-01"), Category: "Vacation", Amount: dec("100")},
	}

	ps := ProjectSinkingFunds(txns, cats, today)
	if len(ps) != 1 {
		t.Fatalf("got %d projections, want 1: %+v", len(ps), ps)
	}
	p := ps[0]
	if !p.Balance.Equal(dec("300")) {
		t.Errorf("balance = %s, want 300", p.Balance)
	}
	// (900-300)/3 calendar months
	if !p.MonthlyRate.Equal(dec("200")) {
		t.Errorf("rate = %s, want 200", p.MonthlyRate)
	}
	if p.Status != "3 months left" {
		t.Errorf("status = %q, want %q", p.Status, "3 months left")
	}
}

func TestRateTotals(t *testing.T) {
	ps := []model.GoalProjection{
		{Priority: model.PriorityHigh, MonthlyRate: dec("50")},
		{Priority: model.PriorityHigh, MonthlyRate: dec("25")},
		{Priority: model.PriorityLow, MonthlyRate: dec("10")},
	}
	if got := TotalRequiredRate(ps); !got.Equal(dec("85")) {
		t.Errorf("total = %s, want 85", got)
	}
	byTier := RateByPriority(ps)
	if !byTier[model.PriorityHigh].Equal(dec("75")) {
		t.Errorf("high tier = %s, want 75", byTier[model.PriorityHigh])
	}
	if !byTier[model.PriorityLow].Equal(dec("10")) {
		t.Errorf("low tier = %s, want 10", byTier[model.PriorityLow])
	}
}
