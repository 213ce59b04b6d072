package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stuffer/internal/ledger"
	"stuffer/internal/model"
	"stuffer/internal/tui/components"
	"stuffer/internal/tui/theme"
)

// viewGoals renders the sinking fund plan: progress toward each target and
// the monthly rate needed to stay on schedule.
func (a App) viewGoals() string {
	w := a.contentWidth()
	t := theme.Active

	if len(a.goals) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(1, 2)
		return hint.Render("No savings goals. Give an envelope a target:\n\nstuffer envelopes set Vacation --target 1200 --due 2027-06-01")
	}

	inner := components.CardInnerWidth(w)
	labelW := 0
	for _, g := range a.goals {
		if len(g.Category) > labelW {
			labelW = len(g.Category)
		}
	}
	barW := inner - labelW - 30
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, g := range a.goals {
		pct := 0.0
		if g.Target.IsPositive() {
			pct, _ = g.Balance.DivRound(g.Target, 6).Float64()
		}
		b.WriteString(components.GoalBar(g.Category, pct, g.Status, labelW, barW))
		b.WriteString("\n")
		detail := fmt.Sprintf("%*s %s of %s, save %s/month",
			labelW, "", a.money(g.Balance), a.money(g.Target), a.money(g.MonthlyRate))
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(detail))
		b.WriteString("\n")
	}

	out := components.ContentCard("Savings goals", strings.TrimRight(b.String(), "\n"), w)

	totalRate := ledger.TotalRequiredRate(a.goals)
	cards := []struct{ Label, Value, Delta string }{
		{"Required per month", a.money(totalRate), "all goals combined"},
	}
	byTier := ledger.RateByPriority(a.goals)
	for _, prio := range []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow, model.PriorityDefault} {
		if rate := byTier[prio]; rate.IsPositive() && len(cards) < 4 {
			cards = append(cards, struct{ Label, Value, Delta string }{prio.String() + " tier", a.money(rate), ""})
		}
	}
	return out + "\n" + components.MetricCardRow(cards, w)
}
