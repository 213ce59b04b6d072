package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stuffer/internal/cli"
	"stuffer/internal/ledger"
	"stuffer/internal/model"
)

var (
	flagSubAmount   string
	flagSubCycle    string
	flagSubCategory string
)

var subsCmd = &cobra.Command{
	Use:   "subs",
	Short: "Subscriptions and their monthly-equivalent cost",
	RunE:  runSubs,
}

var subsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Track a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsAdd,
}

var subsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Stop tracking a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsRemove,
}

func init() {
	subsAddCmd.Flags().StringVar(&flagSubAmount, "amount", "0", "Billed amount per cycle")
	subsAddCmd.Flags().StringVar(&flagSubCycle, "cycle", "monthly", "Billing cycle: monthly, quarterly, semiannual, annual")
	subsAddCmd.Flags().StringVarP(&flagSubCategory, "category", "c", "", "Envelope the bill comes out of")
	subsCmd.AddCommand(subsAddCmd)
	subsCmd.AddCommand(subsRemoveCmd)
	rootCmd.AddCommand(subsCmd)
}

func runSubs(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	subs, err := st.ListSubscriptions()
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Println("\n  No subscriptions tracked.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SUBSCRIPTIONS"))
	fmt.Println()

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, []string{
			sub.Name,
			sub.Category,
			string(sub.Cycle),
			cli.FormatMoney(sub.Amount, cur),
			cli.FormatMoney(ledger.MonthlyEquivalent(sub), cur),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Subscription", "Envelope", "Cycle", "Billed", "Per month"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Fixed monthly load: %s\n\n", cli.FormatMoney(ledger.TotalMonthlyEquivalent(subs), cur))
	return nil
}

func runSubsAdd(_ *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(flagSubAmount)
	if err != nil {
		return fmt.Errorf("invalid --amount: %w", err)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.UpsertSubscription(model.Subscription{
		Name:      args[0],
		Amount:    amount,
		Cycle:     model.BillingCycle(flagSubCycle),
		Category:  flagSubCategory,
		StartDate: time.Now(),
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Subscription %q added (id %d).\n", args[0], id)
	return nil
}

func runSubsRemove(_ *cobra.Command, args []string) error {
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return fmt.Errorf("invalid subscription id %q", args[0])
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteSubscription(id); err != nil {
		return err
	}
	fmt.Printf("  Subscription %d removed.\n", id)
	return nil
}
