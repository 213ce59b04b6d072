package ledger

import (
	"testing"
	"time"

	"stuffer/internal/model"
)

func testLoan(t *testing.T, start string) model.Loan {
	t.Helper()
	return model.Loan{
		Name:           "car",
		StartDate:      mustDate(t, start),
		Principal:      dec("1000"),
		TotalInterest:  dec("100"),
		TermMonths:     10,
		MonthlyPayment: dec("110"),
	}
}

func TestAmortizeLoan_SixMonthsIn(t *testing.T) {
	// Started 2025-01, viewed 2025-06: 5 calendar months elapsed plus the
	// origination payment due on day one.
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	p := AmortizeLoan(testLoan(t, "2025-01-10"), today)

	if p.ElapsedMonths != 6 {
		t.Fatalf("elapsed = %d, want 6", p.ElapsedMonths)
	}
	if !p.PaidToDate.Equal(dec("660")) {
		t.Errorf("paid = %s, want 660", p.PaidToDate)
	}
	if !p.RemainingBalance.Equal(dec("440")) {
		t.Errorf("remaining = %s, want 440", p.RemainingBalance)
	}
	if p.ProgressRatio < 0.5999 || p.ProgressRatio > 0.6001 {
		t.Errorf("progress = %f, want 0.6", p.ProgressRatio)
	}
	if p.Status != "4 payments left" {
		t.Errorf("status = %q, want %q", p.Status, "4 payments left")
	}
	if want := mustDate(t, "2025-11-10"); !p.ProjectedEnd.Equal(want) {
		t.Errorf("projected end = %s, want %s", p.ProjectedEnd, want)
	}
}

func TestAmortizeLoan_ElapsedClampedToTerm(t *testing.T) {
	today := time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC)
	p := AmortizeLoan(testLoan(t, "2025-01-10"), today)

	if p.ElapsedMonths != 10 {
		t.Fatalf("elapsed = %d, want 10 (clamped)", p.ElapsedMonths)
	}
	if !p.RemainingBalance.IsZero() {
		t.Errorf("remaining = %s, want 0", p.RemainingBalance)
	}
	if p.Status != StatusPaidOff {
		t.Errorf("status = %q, want %q", p.Status, StatusPaidOff)
	}
}

func TestAmortizeLoan_FutureStartClampedToZero(t *testing.T) {
	today := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	p := AmortizeLoan(testLoan(t, "2025-06-01"), today)

	if p.ElapsedMonths != 0 {
		t.Fatalf("elapsed = %d, want 0", p.ElapsedMonths)
	}
	if !p.PaidToDate.IsZero() {
		t.Errorf("paid = %s, want 0", p.PaidToDate)
	}
	if p.ProgressRatio != 0 {
		t.Errorf("progress = %f, want 0", p.ProgressRatio)
	}
}

func TestAmortizeLoan_PaidCappedAtLiability(t *testing.T) {
	loan := testLoan(t, "2025-01-10")
	loan.MonthlyPayment = dec("400") // overpays the 1100 liability by month 3
	today := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	p := AmortizeLoan(loan, today)

	if !p.PaidToDate.Equal(dec("1100")) {
		t.Errorf("paid = %s, want capped 1100", p.PaidToDate)
	}
	if p.Status != StatusPaidOff {
		t.Errorf("status = %q, want %q", p.Status, StatusPaidOff)
	}
}

func TestAmortizeLoan_ZeroLiability(t *testing.T) {
	loan := model.Loan{TermMonths: 12, StartDate: mustDate(t, "2025-01-01")}
	p := AmortizeLoan(loan, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	if p.ProgressRatio != 0 {
		t.Fatalf("progress = %f, want 0 for zero liability", p.ProgressRatio)
	}
}
