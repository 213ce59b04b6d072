package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stuffer/internal/model"
	"stuffer/internal/tui/components"
	"stuffer/internal/tui/theme"
)

// viewBookings renders the month's entries plus a spending chart for the
// whole year around the anchor month.
func (a App) viewBookings() string {
	w := a.contentWidth()
	t := theme.Active

	var b strings.Builder
	if len(a.periodTxns) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No bookings this month."))
	} else {
		dateStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		catStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
		descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
		plannedStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
		spentStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		transferStyle := lipgloss.NewStyle().Foreground(t.Blue).Background(t.Surface)

		limit := a.height - 18
		if limit < 5 {
			limit = 5
		}
		shown := a.periodTxns
		if len(shown) > limit {
			shown = shown[:limit]
		}
		descW := components.CardInnerWidth(w) - 46
		if descW < 10 {
			descW = 10
		}
		for _, txn := range shown {
			amt := plannedStyle
			switch {
			case txn.IsTransferLeg():
				amt = transferStyle
			case txn.Type == model.Actual:
				amt = spentStyle
			}
			desc := txn.Description
			if len(desc) > descW {
				desc = desc[:descW-1] + "…"
			}
			b.WriteString(dateStyle.Render(txn.Date.Format("01-02")))
			b.WriteString("  ")
			b.WriteString(catStyle.Render(pad(txn.Category, 14)))
			b.WriteString("  ")
			b.WriteString(descStyle.Render(pad(desc, descW)))
			b.WriteString("  ")
			b.WriteString(amt.Render(a.money(txn.Amount)))
			b.WriteString("\n")
		}
		if len(a.periodTxns) > len(shown) {
			b.WriteString(dateStyle.Render("..."))
		}
	}
	out := components.ContentCard("Bookings  "+a.period.Label, strings.TrimRight(b.String(), "\n"), w)

	values, labels := a.yearSpending()
	chart := components.BarChart(values, labels, t.Accent, components.CardInnerWidth(w), 8)
	return out + "\n" + components.ContentCard("Spending "+a.anchor.Format("2006"), chart, w)
}

func pad(s string, w int) string {
	if len(s) > w {
		return s[:w-1] + "…"
	}
	return s + strings.Repeat(" ", w-len(s))
}
