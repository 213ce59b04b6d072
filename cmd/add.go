package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stuffer/internal/ledger"
	"stuffer/internal/model"
)

var (
	flagAddAmount     string
	flagAddCategory   string
	flagAddDate       string
	flagAddSpent      bool
	flagAddElectronic bool
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Record a booking",
	Long: `Record a booking against an envelope. By default the entry is a
planned allocation counted toward --month; with --spent it is an actual
expense classified by its date.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Rewrite a booking",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a booking",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().StringVarP(&flagAddAmount, "amount", "a", "0", "Booking amount")
		c.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Envelope name")
		c.Flags().StringVar(&flagAddDate, "on", "", "Booking date, e.g. 2025-03-14 (default: today)")
		c.Flags().BoolVarP(&flagAddSpent, "spent", "s", false, "Record an actual expense instead of a planned allocation")
		c.Flags().BoolVarP(&flagAddElectronic, "electronic", "e", false, "Paid by card or transfer, not cash")
	}
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
}

// buildEntry assembles a transaction from the add/edit flag set.
func buildEntry(description string) (model.Transaction, error) {
	amount, err := decimal.NewFromString(flagAddAmount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid --amount: %w", err)
	}
	date := time.Now()
	if flagAddDate != "" {
		date, err = time.Parse("2006-01-02", flagAddDate)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid --on %q (want e.g. 2025-03-14): %w", flagAddDate, err)
		}
	}

	txn := model.Transaction{
		Date:         date,
		Category:     flagAddCategory,
		Description:  description,
		Amount:       amount,
		Type:         model.Planned,
		IsElectronic: flagAddElectronic,
	}
	if flagAddSpent {
		txn.Type = model.Actual
	} else {
		period, err := resolvePeriod()
		if err != nil {
			return model.Transaction{}, err
		}
		txn.BudgetMonth = period.Month().Format(ledger.BudgetMonthLayout)
	}
	return txn, nil
}

func runAdd(_ *cobra.Command, args []string) error {
	txn, err := buildEntry(args[0])
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := newService(st).Record(txn)
	if err != nil {
		return err
	}
	fmt.Printf("  Recorded %s booking %d for %q.\n", txn.Type, id, txn.Category)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid booking id %q", args[0])
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	prev, err := st.GetTransaction(id)
	if err != nil {
		return err
	}
	if prev.IsTransferLeg() {
		return fmt.Errorf("booking %d is a transfer leg; delete both legs and transfer again", id)
	}

	// Only flags the user actually set override the stored entry.
	txn := prev
	if cmd.Flags().Changed("amount") {
		txn.Amount, err = decimal.NewFromString(flagAddAmount)
		if err != nil {
			return fmt.Errorf("invalid --amount: %w", err)
		}
	}
	if cmd.Flags().Changed("category") {
		txn.Category = flagAddCategory
	}
	if cmd.Flags().Changed("on") {
		txn.Date, err = time.Parse("2006-01-02", flagAddDate)
		if err != nil {
			return fmt.Errorf("invalid --on %q: %w", flagAddDate, err)
		}
	}
	if cmd.Flags().Changed("spent") {
		if flagAddSpent {
			txn.Type = model.Actual
			txn.BudgetMonth = ""
		} else {
			txn.Type = model.Planned
			txn.BudgetMonth = txn.Date.Format(ledger.BudgetMonthLayout)
		}
	}
	if cmd.Flags().Changed("electronic") {
		txn.IsElectronic = flagAddElectronic
	}

	if err := newService(st).Update(id, txn); err != nil {
		return err
	}
	fmt.Printf("  Booking %d updated.\n", id)
	return nil
}

func runDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid booking id %q", args[0])
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := newService(st).Delete(id); err != nil {
		return err
	}
	fmt.Printf("  Booking %d deleted.\n", id)
	return nil
}
