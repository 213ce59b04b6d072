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
	flagLoanStart     string
	flagLoanPrincipal string
	flagLoanInterest  string
	flagLoanTerm      int
	flagLoanPayment   string
)

var loansCmd = &cobra.Command{
	Use:   "loans",
	Short: "Loan progress estimates",
	RunE:  runLoans,
}

var loansAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a fixed-term installment loan",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoansAdd,
}

var loansRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a loan (paid off or cancelled)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoansRemove,
}

func init() {
	loansAddCmd.Flags().StringVar(&flagLoanStart, "start", "", "Start date (2006-01-02, default today)")
	loansAddCmd.Flags().StringVar(&flagLoanPrincipal, "principal", "0", "Borrowed amount")
	loansAddCmd.Flags().StringVar(&flagLoanInterest, "interest", "0", "Total interest over the term, lump sum")
	loansAddCmd.Flags().IntVar(&flagLoanTerm, "term", 0, "Term in months")
	loansAddCmd.Flags().StringVar(&flagLoanPayment, "payment", "0", "Monthly payment")
	loansCmd.AddCommand(loansAddCmd)
	loansCmd.AddCommand(loansRemoveCmd)
	rootCmd.AddCommand(loansCmd)
}

func runLoans(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	loans, err := st.ListLoans()
	if err != nil {
		return err
	}
	if len(loans) == 0 {
		fmt.Println("\n  No loans tracked.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("LOANS"))
	fmt.Println()

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(loans))
	for _, p := range ledger.AmortizeLoans(loans, time.Now()) {
		rows = append(rows, []string{
			p.Loan.Name,
			cli.FormatMoney(p.Loan.TotalLiability(), cur),
			cli.FormatMoney(p.PaidToDate, cur),
			cli.FormatMoney(p.RemainingBalance, cur),
			cli.RenderBar(p.ProgressRatio, 12) + " " + cli.FormatPercent(p.ProgressRatio),
			p.ProjectedEnd.Format("Jan 2006"),
			p.Status,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Loan", "Total", "Paid", "Remaining", "Progress", "Ends", "Status"},
		Rows:    rows,
	}))
	fmt.Println("\n  Estimates are linear: the lump-sum interest is spread evenly over the term.")
	return nil
}

func runLoansAdd(_ *cobra.Command, args []string) error {
	start := time.Now()
	if flagLoanStart != "" {
		t, err := time.Parse("2006-01-02", flagLoanStart)
		if err != nil {
			return fmt.Errorf("invalid --start %q: %w", flagLoanStart, err)
		}
		start = t
	}
	principal, err := decimal.NewFromString(flagLoanPrincipal)
	if err != nil {
		return fmt.Errorf("invalid --principal: %w", err)
	}
	interest, err := decimal.NewFromString(flagLoanInterest)
	if err != nil {
		return fmt.Errorf("invalid --interest: %w", err)
	}
	payment, err := decimal.NewFromString(flagLoanPayment)
	if err != nil {
		return fmt.Errorf("invalid --payment: %w", err)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.UpsertLoan(model.Loan{
		Name:           args[0],
		StartDate:      start,
		Principal:      principal,
		TotalInterest:  interest,
		TermMonths:     flagLoanTerm,
		MonthlyPayment: payment,
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Loan %q added (id %d).\n", args[0], id)
	return nil
}

func runLoansRemove(_ *cobra.Command, args []string) error {
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return fmt.Errorf("invalid loan id %q", args[0])
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteLoan(id); err != nil {
		return err
	}
	fmt.Printf("  Loan %d removed.\n", id)
	return nil
}
