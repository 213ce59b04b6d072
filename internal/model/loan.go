package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a fixed-term installment loan. TotalInterest is a user-supplied
// lump sum, not a rate, so amortization is linear over the term.
type Loan struct {
	ID             int64
	Name           string
	StartDate      time.Time
	Principal      decimal.Decimal
	TotalInterest  decimal.Decimal
	TermMonths     int
	MonthlyPayment decimal.Decimal
}

// TotalLiability is principal plus lump-sum interest.
func (l Loan) TotalLiability() decimal.Decimal {
	return l.Principal.Add(l.TotalInterest)
}
