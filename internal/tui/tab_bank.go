package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stuffer/internal/ledger"
	"stuffer/internal/model"
	"stuffer/internal/tui/components"
	"stuffer/internal/tui/theme"
)

// viewBank renders the back-to-bank balance: electronic spending covered by
// envelope cash that has not been redeposited yet.
func (a App) viewBank() string {
	w := a.contentWidth()
	t := theme.Active

	subsLoad := ledger.TotalMonthlyEquivalent(a.subs)
	cards := []struct{ Label, Value, Delta string }{
		{"Owed to bank", a.money(a.owed), "card spending not yet redeposited"},
		{"Subscriptions", a.money(subsLoad), "fixed monthly equivalent"},
	}
	out := components.MetricCardRow(cards, w) + "\n"

	var deposits []model.Transaction
	for i := len(a.txns) - 1; i >= 0; i-- {
		if a.txns[i].Type == model.BankDeposit {
			deposits = append(deposits, a.txns[i])
			if len(deposits) == 8 {
				break
			}
		}
	}

	var b strings.Builder
	if a.owed.IsPositive() {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).
			Render("Press [d] to record a deposit."))
		b.WriteString("\n\n")
	}
	if len(deposits) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No deposits recorded yet."))
	} else {
		dateStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		amtStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
		for _, d := range deposits {
			b.WriteString(dateStyle.Render(d.Date.Format("2006-01-02")))
			b.WriteString("  ")
			b.WriteString(amtStyle.Render(a.money(d.Amount)))
			b.WriteString("\n")
		}
	}

	return out + components.ContentCard("Recent deposits", strings.TrimRight(b.String(), "\n"), w)
}
