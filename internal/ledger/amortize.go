package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stuffer/internal/model"
)

// StatusPaidOff marks a loan whose remaining balance is (within rounding) zero.
const StatusPaidOff = "paid off"

// paidOffEpsilon absorbs cent-level rounding when the final payment does not
// land exactly on the total liability.
var paidOffEpsilon = decimal.NewFromFloat(0.005)

// AmortizeLoan estimates progress on a fixed-term installment loan.
//
// This is a linear model, not true amortization: TotalInterest is a
// user-supplied lump sum rather than a rate, so each month simply retires
// MonthlyPayment of the total liability. The origination month's payment
// counts as due on day one, hence the +1 on the elapsed calendar months.
// Do not "fix" this into a compounding schedule; it would change the numbers
// users entered their contracts against.
func AmortizeLoan(loan model.Loan, today time.Time) model.LoanProjection {
	elapsed := MonthsBetween(loan.StartDate, today) + 1
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > loan.TermMonths {
		elapsed = loan.TermMonths
	}

	liability := loan.TotalLiability()
	paid := loan.MonthlyPayment.Mul(decimal.NewFromInt(int64(elapsed)))
	if paid.GreaterThan(liability) {
		paid = liability
	}
	remaining := liability.Sub(paid)

	progress := 0.0
	if liability.IsPositive() {
		progress, _ = paid.DivRound(liability, 6).Float64()
	}

	status := StatusPaidOff
	if remaining.GreaterThan(paidOffEpsilon) {
		status = paymentsLeftStatus(loan.TermMonths - elapsed)
	}

	return model.LoanProjection{
		Loan:             loan,
		ElapsedMonths:    elapsed,
		PaidToDate:       paid,
		RemainingBalance: remaining,
		ProgressRatio:    progress,
		ProjectedEnd:     loan.StartDate.AddDate(0, loan.TermMonths, 0),
		Status:           status,
	}
}

func paymentsLeftStatus(n int) string {
	if n == 1 {
		return "1 payment left"
	}
	return fmt.Sprintf("%d payments left", n)
}

// AmortizeLoans projects every loan against the same reference date.
func AmortizeLoans(loans []model.Loan, today time.Time) []model.LoanProjection {
	out := make([]model.LoanProjection, 0, len(loans))
	for _, l := range loans {
		out = append(out, AmortizeLoan(l, today))
	}
	return out
}
