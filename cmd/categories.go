package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stuffer/internal/cli"
	"stuffer/internal/model"
)

var (
	flagCatPriority   string
	flagCatNotes      string
	flagCatTarget     string
	flagCatDue        string
	flagCatFixed      bool
	flagCatCashless   bool
	flagCatAllocation string
)

var categoriesCmd = &cobra.Command{
	Use:     "envelopes",
	Aliases: []string{"categories"},
	Short:   "List the budgeting envelopes",
	RunE:    runEnvelopes,
}

var categoriesSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or update an envelope",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnvelopesSet,
}

var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an envelope",
	Long: `Remove an envelope. Its bookings stay in the log and show up under
"Uncategorized" from then on.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnvelopesRemove,
}

func init() {
	categoriesSetCmd.Flags().StringVarP(&flagCatPriority, "priority", "p", "default", "Display tier: high, medium, low, default")
	categoriesSetCmd.Flags().StringVar(&flagCatNotes, "notes", "", "Free-form note")
	categoriesSetCmd.Flags().StringVar(&flagCatTarget, "target", "0", "Sinking-fund target amount (0 for none)")
	categoriesSetCmd.Flags().StringVar(&flagCatDue, "due", "", "Goal due date, e.g. 2026-06-01")
	categoriesSetCmd.Flags().BoolVar(&flagCatFixed, "fixed", false, "Fixed cost paid straight from the account")
	categoriesSetCmd.Flags().BoolVar(&flagCatCashless, "cashless", false, "Variable spending that is always electronic")
	categoriesSetCmd.Flags().StringVar(&flagCatAllocation, "allocation", "0", "Default amount for bulk distribution")
	categoriesCmd.AddCommand(categoriesSetCmd)
	categoriesCmd.AddCommand(categoriesRemoveCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runEnvelopes(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	cats, err := st.ListCategories()
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		fmt.Println("\n  No envelopes yet. Create one with: stuffer envelopes set <name>")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ENVELOPES"))
	fmt.Println()

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		goal := "-"
		if c.HasGoal() {
			goal = cli.FormatMoney(c.TargetAmount, cur)
			if !c.DueDate.IsZero() {
				goal += " by " + c.DueDate.Format("Jan 2006")
			}
		}
		kind := ""
		switch {
		case c.IsFixedCost:
			kind = "fixed"
		case c.IsCashlessVariable:
			kind = "cashless"
		}
		rows = append(rows, []string{
			c.Name,
			c.Priority.String(),
			kind,
			cli.FormatMoney(c.DefaultAllocation, cur),
			goal,
			c.Notes,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Envelope", "Tier", "Kind", "Allocation", "Goal", "Notes"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runEnvelopesSet(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	// Start from the stored envelope so set only touches changed flags.
	c := model.Category{Name: args[0], Priority: model.PriorityDefault}
	cats, err := st.ListCategories()
	if err != nil {
		return err
	}
	for _, existing := range cats {
		if existing.Name == args[0] {
			c = existing
			break
		}
	}

	if cmd.Flags().Changed("priority") {
		c.Priority = model.ParsePriority(flagCatPriority)
	}
	if cmd.Flags().Changed("notes") {
		c.Notes = flagCatNotes
	}
	if cmd.Flags().Changed("target") {
		c.TargetAmount, err = decimal.NewFromString(flagCatTarget)
		if err != nil {
			return fmt.Errorf("invalid --target: %w", err)
		}
	}
	if cmd.Flags().Changed("due") {
		c.DueDate, err = time.Parse("2006-01-02", flagCatDue)
		if err != nil {
			return fmt.Errorf("invalid --due %q: %w", flagCatDue, err)
		}
	}
	if cmd.Flags().Changed("fixed") {
		c.IsFixedCost = flagCatFixed
	}
	if cmd.Flags().Changed("cashless") {
		c.IsCashlessVariable = flagCatCashless
	}
	if cmd.Flags().Changed("allocation") {
		c.DefaultAllocation, err = decimal.NewFromString(flagCatAllocation)
		if err != nil {
			return fmt.Errorf("invalid --allocation: %w", err)
		}
	}

	if err := st.UpsertCategory(c); err != nil {
		return err
	}
	fmt.Printf("  Envelope %q saved.\n", c.Name)
	return nil
}

func runEnvelopesRemove(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteCategory(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Envelope %q removed. Its bookings now show as Uncategorized.\n", args[0])
	return nil
}
