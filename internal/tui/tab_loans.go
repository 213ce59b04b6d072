package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stuffer/internal/tui/components"
	"stuffer/internal/tui/theme"
)

// viewLoans renders the payoff estimate for each installment loan.
func (a App) viewLoans() string {
	w := a.contentWidth()
	t := theme.Active

	if len(a.loanRows) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(1, 2)
		return hint.Render("No loans tracked. Add one:\n\nstuffer loans add Car --principal 12000 --term 48 --payment 260")
	}

	inner := components.CardInnerWidth(w)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	statusStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	var b strings.Builder
	for i, p := range a.loanRows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(nameStyle.Render(p.Loan.Name))
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(p.Status))
		b.WriteString("\n")
		b.WriteString(components.ProgressBar(p.ProgressRatio, inner-8))
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(fmt.Sprintf("paid %s of %s, %s left, ends around %s",
			a.money(p.PaidToDate), a.money(p.Loan.TotalLiability()),
			a.money(p.RemainingBalance), p.ProjectedEnd.Format("Jan 2006"))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(detailStyle.Render("Estimates assume even payments over the full term."))

	return components.ContentCard("Loans", strings.TrimRight(b.String(), "\n"), w)
}
