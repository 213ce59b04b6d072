package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stuffer/internal/cli"
	"stuffer/internal/ledger"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Back-to-bank reconciliation balance",
	RunE:  runBank,
}

var bankDepositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Record cash going back to the bank",
	Args:  cobra.ExactArgs(1),
	RunE:  runBankDeposit,
}

func init() {
	bankCmd.AddCommand(bankDepositCmd)
	rootCmd.AddCommand(bankCmd)
}

func runBank(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	txns, cats, err := loadLedger(st)
	if err != nil {
		return err
	}

	owed := ledger.Owed(txns, cats)
	fmt.Println()
	fmt.Println(cli.RenderTitle("BACK TO BANK"))
	fmt.Println()
	if owed.IsPositive() {
		fmt.Printf("  Cash to redeposit: %s\n", cli.FormatMoney(owed, cfg.General.Currency))
		fmt.Println("  This was spent by card from envelopes that still hold the cash.")
		fmt.Println("  Record the redeposit with `stuffer bank deposit <amount>`.")
	} else {
		fmt.Println("  Nothing owed. Envelopes and bank agree.")
	}
	fmt.Println()
	return nil
}

func runBankDeposit(_ *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if _, err := newService(st).Deposit(amount, time.Now()); err != nil {
		return err
	}
	fmt.Printf("  Deposited %s back to the bank.\n", cli.FormatMoney(amount, cfg.General.Currency))
	return nil
}
