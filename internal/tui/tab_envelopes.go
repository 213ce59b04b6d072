package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stuffer/internal/ledger"
	"stuffer/internal/tui/components"
	"stuffer/internal/tui/theme"
)

// viewEnvelopes renders the monthly balance sheet: one utilization bar per
// envelope plus the month's totals as metric cards.
func (a App) viewEnvelopes() string {
	w := a.contentWidth()

	cards := []struct{ Label, Value, Delta string }{
		{"Available", a.money(a.total.Available), fmt.Sprintf("carryover %s", a.money(a.total.Carryover))},
		{"Planned", a.money(a.total.Planned), a.period.Label},
		{"Spent", a.money(a.total.Actual), ""},
		{"Remaining", a.money(a.total.Remaining), ""},
	}
	out := components.MetricCardRow(cards, w) + "\n"

	if len(a.rows) == 0 {
		t := theme.Active
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(1, 2)
		return out + hint.Render("No activity this month. Press [a] to add a booking.")
	}

	inner := components.CardInnerWidth(w)
	nameW := 0
	for _, row := range a.rows {
		if len(row.Category) > nameW {
			nameW = len(row.Category)
		}
	}
	if nameW > inner/3 {
		nameW = inner / 3
	}

	var b strings.Builder
	t := theme.Active
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	overStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	for _, row := range a.rows {
		name := row.Category
		if len(name) > nameW {
			name = name[:nameW-1] + "…"
		}
		remaining := amountStyle.Render(fmt.Sprintf("%12s", a.money(row.Remaining)))
		if row.Remaining.IsNegative() {
			remaining = overStyle.Render(fmt.Sprintf("%12s", a.money(row.Remaining)))
		}
		bar := components.UtilizationBar(fmt.Sprintf("%-*s", nameW, name), row.Utilization, inner-14)
		b.WriteString(bar + " " + remaining + "\n")
	}

	return out + components.ContentCard("Envelopes  "+a.period.Label, strings.TrimRight(b.String(), "\n"), w)
}

// yearSpending extracts the actual totals of the anchor year for charts.
func (a App) yearSpending() ([]float64, []string) {
	totals := ledger.YearTotals(a.txns, a.anchor.Year())
	values := make([]float64, 0, len(totals))
	labels := make([]string, 0, len(totals))
	for _, mt := range totals {
		f, _ := mt.Actual.Float64()
		values = append(values, f)
		labels = append(labels, mt.Period.Month().Format("Jan"))
	}
	return values, labels
}
