package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingCycle is how often a subscription bills.
type BillingCycle string

const (
	CycleMonthly    BillingCycle = "monthly"
	CycleQuarterly  BillingCycle = "quarterly"
	CycleSemiannual BillingCycle = "semiannual"
	CycleAnnual     BillingCycle = "annual"
)

// Months returns the cycle length in months, defaulting to monthly for
// unknown values.
func (c BillingCycle) Months() int {
	switch c {
	case CycleQuarterly:
		return 3
	case CycleSemiannual:
		return 6
	case CycleAnnual:
		return 12
	}
	return 1
}

// Subscription is a recurring contract used to project a fixed
// monthly-equivalent cost. It never generates transactions on its own.
type Subscription struct {
	ID        int64
	Name      string
	Amount    decimal.Decimal
	Cycle     BillingCycle
	Category  string
	StartDate time.Time
}
