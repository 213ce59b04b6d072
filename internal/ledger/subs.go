package ledger

import (
	"github.com/shopspring/decimal"

	"stuffer/internal/model"
)

// MonthlyEquivalent spreads a subscription's billing amount over its cycle:
// what the contract costs per month regardless of when it actually bills.
func MonthlyEquivalent(sub model.Subscription) decimal.Decimal {
	return sub.Amount.DivRound(decimal.NewFromInt(int64(sub.Cycle.Months())), 2)
}

// TotalMonthlyEquivalent sums the monthly-equivalent cost of all
// subscriptions. Subscriptions never generate transactions; this figure is
// purely a planning aid.
func TotalMonthlyEquivalent(subs []model.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subs {
		total = total.Add(MonthlyEquivalent(s))
	}
	return total
}
