package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one envelope's balance sheet for a single analysis month.
type LedgerRow struct {
	Category string
	Priority Priority

	// Carryover is unspent planned money from all months before this one.
	Carryover decimal.Decimal
	// Planned and Actual are restricted to this month.
	Planned decimal.Decimal
	Actual  decimal.Decimal
	// Available = Carryover + Planned; Remaining = Available - Actual.
	Available decimal.Decimal
	Remaining decimal.Decimal
	// Utilization = Actual / Available, 0 when Available is 0.
	Utilization float64
}

// GoalProjection is the savings plan for one sinking-fund envelope.
type GoalProjection struct {
	Category    string
	Priority    Priority
	Target      decimal.Decimal
	Balance     decimal.Decimal
	MonthlyRate decimal.Decimal
	Status      string
}

// LoanProjection is the linear amortization estimate for one loan.
type LoanProjection struct {
	Loan             Loan
	ElapsedMonths    int
	PaidToDate       decimal.Decimal
	RemainingBalance decimal.Decimal
	ProgressRatio    float64
	ProjectedEnd     time.Time
	Status           string
}

// DraftAllocation is one pending row of a bulk distribution: the envelope and
// the amount to plan for the chosen month. Zero-amount rows are skipped at
// commit, not recorded as no-op transactions.
type DraftAllocation struct {
	Category string
	Amount   decimal.Decimal
}
