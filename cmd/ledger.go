package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stuffer/internal/cli"
	"stuffer/internal/ledger"
	"stuffer/internal/model"
)

var (
	flagLedgerCategories []string
	flagLedgerRecent     bool
	flagLedgerYear       int
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Monthly envelope balance sheet",
	RunE:  runLedger,
}

func init() {
	ledgerCmd.Flags().StringSliceVarP(&flagLedgerCategories, "category", "c", nil, "Restrict to these envelopes (repeatable)")
	ledgerCmd.Flags().BoolVar(&flagLedgerRecent, "recent", false, "Also list the month's bookings")
	ledgerCmd.Flags().IntVar(&flagLedgerYear, "year", 0, "Show the planned vs actual overview for a year instead")
	rootCmd.AddCommand(ledgerCmd)
}

func runLedger(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	txns, cats, err := loadLedger(st)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		fmt.Println("\n  No bookings yet. Add one with `stuffer add`.")
		return nil
	}

	if flagLedgerYear != 0 {
		return renderYear(txns, flagLedgerYear, cfg.General.Currency)
	}

	period, err := resolvePeriod()
	if err != nil {
		return err
	}

	var filter map[string]bool
	if len(flagLedgerCategories) > 0 {
		filter = make(map[string]bool, len(flagLedgerCategories))
		for _, name := range flagLedgerCategories {
			filter[name] = true
		}
	}

	rows, total := ledger.Aggregate(txns, cats, period.Key, filter)

	fmt.Println()
	fmt.Println(cli.RenderTitle("ENVELOPES  " + period.Label))
	fmt.Println()

	cur := cfg.General.Currency
	tableRows := make([][]string, 0, len(rows)+2)
	for _, r := range rows {
		tableRows = append(tableRows, ledgerTableRow(r, cur))
	}
	tableRows = append(tableRows, []string{"---"})
	tableRows = append(tableRows, ledgerTableRow(total, cur))

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Envelope", "Carryover", "Planned", "Available", "Spent", "Remaining", "Used"},
		Rows:    tableRows,
	}))

	if flagLedgerRecent {
		renderRecent(txns, period.Key, cur)
	}
	return nil
}

func ledgerTableRow(r model.LedgerRow, cur string) []string {
	remaining := cli.StyleRemaining(cli.FormatMoney(r.Remaining, cur), r.Utilization, r.Remaining.IsNegative())
	return []string{
		r.Category,
		cli.FormatMoney(r.Carryover, cur),
		cli.FormatMoney(r.Planned, cur),
		cli.FormatMoney(r.Available, cur),
		cli.FormatMoney(r.Actual, cur),
		remaining,
		cli.FormatPercent(r.Utilization),
	}
}

func renderRecent(txns []model.Transaction, key int, cur string) {
	recent := ledger.InPeriod(txns, key)
	if len(recent) == 0 {
		return
	}
	rows := make([][]string, 0, len(recent))
	for _, txn := range recent {
		kind := "planned"
		if txn.Type == model.Actual {
			kind = "spent"
		}
		if txn.IsTransferLeg() {
			kind = "transfer"
		}
		rows = append(rows, []string{
			txn.Date.Format("2006-01-02"),
			txn.Category,
			txn.Description,
			cli.FormatSignedMoney(txn.Amount, cur),
			kind,
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Bookings",
		Headers: []string{"Date", "Envelope", "Description", "Amount", "Type"},
		Rows:    rows,
	}))
}

func renderYear(txns []model.Transaction, year int, cur string) error {
	months := ledger.YearTotals(txns, year)

	fmt.Println()
	fmt.Println(cli.RenderTitle("YEAR OVERVIEW  " + strconv.Itoa(year)))
	fmt.Println()

	rows := make([][]string, 0, 12)
	spark := make([]float64, 0, 12)
	for _, m := range months {
		diff := m.Planned.Sub(m.Actual)
		rows = append(rows, []string{
			m.Period.Label,
			cli.FormatMoney(m.Planned, cur),
			cli.FormatMoney(m.Actual, cur),
			cli.FormatMoney(diff, cur),
		})
		actual, _ := m.Actual.Float64()
		spark = append(spark, actual)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Planned", "Spent", "Difference"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Spending: %s\n", cli.RenderSparkline(spark))
	return nil
}
