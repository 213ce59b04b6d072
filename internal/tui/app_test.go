package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"stuffer/internal/ledger"
	"stuffer/internal/model"
	"stuffer/internal/tui/components"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedApp() App {
	a := App{loaded: true, width: 100, height: 40}
	a.anchor = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	a.txns = []model.Transaction{
		{
			ID:          1,
			Date:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			Category:    "Groceries",
			Amount:      decimal.RequireFromString("200"),
			Type:        model.Planned,
			BudgetMonth: "2025-03",
		},
	}
	a.cats = []model.Category{{Name: "Groceries"}}
	a.recompute()
	return a
}

func TestTabKeysSwitchTabs(t *testing.T) {
	a := loadedApp()
	for i, tab := range components.Tabs {
		m, _ := a.updateKeys(keyMsg(string(tab.Key)))
		got := m.(App)
		if got.activeTab != i {
			t.Errorf("key %q: activeTab = %d, want %d", tab.Key, got.activeTab, i)
		}
	}
}

func TestMonthNavigationRecomputes(t *testing.T) {
	a := loadedApp()
	if a.period.Key != 202503 {
		t.Fatalf("period key = %d, want 202503", a.period.Key)
	}
	if !a.total.Planned.Equal(decimal.RequireFromString("200")) {
		t.Fatalf("planned = %s, want 200", a.total.Planned)
	}

	m, _ := a.updateKeys(keyMsg("["))
	prev := m.(App)
	if prev.period.Key != 202502 {
		t.Errorf("after [: period key = %d, want 202502", prev.period.Key)
	}
	if !prev.total.Planned.IsZero() {
		t.Errorf("february should have no planned money, got %s", prev.total.Planned)
	}

	m, _ = prev.updateKeys(keyMsg("]"))
	back := m.(App)
	if back.period.Key != 202503 {
		t.Errorf("after ]: period key = %d, want 202503", back.period.Key)
	}
}

func TestRecomputeDerivesOwed(t *testing.T) {
	a := loadedApp()
	a.txns = append(a.txns, model.Transaction{
		ID:           2,
		Date:         time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		Category:     "Groceries",
		Amount:       decimal.RequireFromString("45"),
		Type:         model.Actual,
		IsElectronic: true,
	})
	a.recompute()
	if !a.owed.Equal(decimal.RequireFromString("45")) {
		t.Errorf("owed = %s, want 45", a.owed)
	}
}

func TestDepositFormRequiresOwedBalance(t *testing.T) {
	a := loadedApp()
	a.owed = decimal.Zero
	m, _ := a.openDepositForm()
	got := m.(App)
	if got.form != nil {
		t.Error("deposit form should not open when nothing is owed")
	}
	if got.opErr == nil {
		t.Error("expected an error message when nothing is owed")
	}
}

func TestPeriodRoundTripThroughAnchor(t *testing.T) {
	a := loadedApp()
	p := ledger.PeriodOf(a.anchor)
	if p.Label != "March 2025" {
		t.Errorf("label = %q, want %q", p.Label, "March 2025")
	}
	if !p.Month().Equal(a.anchor) {
		t.Errorf("Month() = %s, want %s", p.Month(), a.anchor)
	}
}
