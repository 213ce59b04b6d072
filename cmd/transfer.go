package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stuffer/internal/cli"
)

var flagTransferDate string

var transferCmd = &cobra.Command{
	Use:   "transfer <from> <to> <amount>",
	Short: "Move money between envelopes",
	Long: `Move money from one envelope to another. The transfer is recorded as
a matched pair of planned entries, so every balance sheet keeps adding up.`,
	Args: cobra.ExactArgs(3),
	RunE: runTransfer,
}

func init() {
	transferCmd.Flags().StringVar(&flagTransferDate, "on", "", "Transfer date, e.g. 2025-03-14 (default: today)")
	rootCmd.AddCommand(transferCmd)
}

func runTransfer(_ *cobra.Command, args []string) error {
	from, to := args[0], args[1]
	amount, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[2], err)
	}
	date := time.Now()
	if flagTransferDate != "" {
		date, err = time.Parse("2006-01-02", flagTransferDate)
		if err != nil {
			return fmt.Errorf("invalid --on %q: %w", flagTransferDate, err)
		}
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := newService(st).Transfer(from, to, amount, date); err != nil {
		return err
	}
	fmt.Printf("  Moved %s from %q to %q.\n", cli.FormatMoney(amount, cfg.General.Currency), from, to)
	return nil
}
