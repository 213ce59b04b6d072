package ledger

import (
	"testing"

	"stuffer/internal/model"
)

func TestMonthlyEquivalent(t *testing.T) {
	cases := []struct {
		cycle  model.BillingCycle
		amount string
		want   string
	}{
		{model.CycleMonthly, "9.99", "9.99"},
		{model.CycleQuarterly, "30", "10"},
		{model.CycleSemiannual, "60", "10"},
		{model.CycleAnnual, "120", "10"},
		{model.CycleAnnual, "100", "8.33"},
	}
	for _, tc := range cases {
		sub := model.Subscription{Amount: dec(tc.amount), Cycle: tc.cycle}
		if got := MonthlyEquivalent(sub); !got.Equal(dec(tc.want)) {
			t.Errorf("%s %s: got %s, want %s", tc.cycle, tc.amount, got, tc.want)
		}
	}
}

func TestTotalMonthlyEquivalent(t *testing.T) {
	subs := []model.Subscription{
		{Amount: dec("12"), Cycle: model.CycleMonthly},
		{Amount: dec("120"), Cycle: model.CycleAnnual},
	}
	if got := TotalMonthlyEquivalent(subs); !got.Equal(dec("22")) {
		t.Fatalf("total = %s, want 22", got)
	}
}
