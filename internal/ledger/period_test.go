package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"stuffer/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClassify_PlannedUsesBudgetMonth(t *testing.T) {
	txn := model.Transaction{
		Type:        model.Planned,
		Date:        time.Date(2025, time.January, 28, 0, 0, 0, 0, time.UTC),
		BudgetMonth: "2025-02",
	}
	p := Classify(txn)
	if p.Key != 202502 {
		t.Fatalf("Key = %d, want 202502", p.Key)
	}
	if p.Label != "February 2025" {
		t.Fatalf("Label = %q, want %q", p.Label, "February 2025")
	}
}

func TestClassify_MalformedBudgetMonthFallsBackToDate(t *testing.T) {
	cases := []string{"02-2025", "garbage", "2025/02", "2025-13"}
	for _, bm := range cases {
		txn := model.Transaction{
			Type:        model.Planned,
			Date:        time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
			BudgetMonth: bm,
		}
		if got := Classify(txn).Key; got != 202503 {
			t.Errorf("budget_month %q: Key = %d, want fallback 202503", bm, got)
		}
	}
}

func TestClassify_ActualIgnoresBudgetMonth(t *testing.T) {
	txn := model.Transaction{
		Type:        model.Actual,
		Date:        time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		BudgetMonth: "2025-06",
	}
	if got := Classify(txn).Key; got != 202503 {
		t.Fatalf("Key = %d, want 202503 (spending is attributed to its date)", got)
	}
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2025-01-31", "2025-02-01", 1},
		{"2025-01-01", "2025-01-20", 0},
		{"2024-11-15", "2025-02-15", 3},
		{"2025-06-01", "2025-01-01", -5},
	}
	for _, tc := range cases {
		got := MonthsBetween(mustDate(t, tc.a), mustDate(t, tc.b))
		if got != tc.want {
			t.Errorf("MonthsBetween(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestPeriods_SortedDescendingAndSkipsDeposits(t *testing.T) {
	txns := []model.Transaction{
		{Type: model.Actual, Date: mustDate(t, "2025-01-10")},
		{Type: model.Planned, Date: mustDate(t, "2025-01-02"), BudgetMonth: "2025-03"},
		{Type: model.BankDeposit, Date: mustDate(t, "2025-06-01"), Amount: dec("20")},
		{Type: model.Actual, Date: mustDate(t, "2024-12-31")},
	}
	ps := Periods(txns)
	want := []int{202503, 202501, 202412}
	if len(ps) != len(want) {
		t.Fatalf("got %d periods, want %d", len(ps), len(want))
	}
	for i, p := range ps {
		if p.Key != want[i] {
			t.Errorf("period[%d].Key = %d, want %d", i, p.Key, want[i])
		}
	}
}

func TestInPeriod_NewestFirst(t *testing.T) {
	txns := []model.Transaction{
		{ID: 1, Type: model.Actual, Date: mustDate(t, "2025-01-05")},
		{ID: 2, Type: model.Actual, Date: mustDate(t, "2025-01-20")},
		{ID: 3, Type: model.Actual, Date: mustDate(t, "2025-02-01")},
	}
	got := InPeriod(txns, 202501)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("InPeriod returned wrong order: %+v", got)
	}
}
