package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stuffer/internal/cli"
	"stuffer/internal/ledger"
	"stuffer/internal/model"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Sinking fund savings plan",
	RunE:  runGoals,
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	txns, cats, err := loadLedger(st)
	if err != nil {
		return err
	}

	projections := ledger.ProjectSinkingFunds(txns, cats, time.Now())
	if len(projections) == 0 {
		fmt.Println("\n  No sinking funds. Give an envelope a target amount with `stuffer envelopes set`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SINKING FUNDS"))
	fmt.Println()

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(projections))
	for _, p := range projections {
		progress := 0.0
		if p.Target.IsPositive() {
			progress, _ = p.Balance.DivRound(p.Target, 4).Float64()
		}
		rows = append(rows, []string{
			p.Category,
			p.Priority.String(),
			cli.FormatMoney(p.Balance, cur),
			cli.FormatMoney(p.Target, cur),
			cli.RenderBar(progress, 12),
			cli.FormatMoney(p.MonthlyRate, cur),
			p.Status,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Envelope", "Priority", "Saved", "Target", "Progress", "Monthly", "Status"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Required per month: %s\n", cli.FormatMoney(ledger.TotalRequiredRate(projections), cur))
	byTier := ledger.RateByPriority(projections)
	for _, tier := range []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow, model.PriorityDefault} {
		if rate, ok := byTier[tier]; ok && !rate.IsZero() {
			fmt.Printf("    %-8s %s\n", tier.String(), cli.FormatMoney(rate, cur))
		}
	}
	fmt.Println()
	return nil
}
