package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stuffer/internal/cli"
	"stuffer/internal/model"
	"stuffer/internal/ops"
)

var distributeCmd = &cobra.Command{
	Use:   "distribute [envelope=amount ...]",
	Short: "Stuff the monthly envelopes in one go",
	Long: `Commit a whole month's budget at once. Without arguments every envelope
gets its default allocation; envelope=amount arguments override single rows.
Rows left at zero are skipped. The target month comes from --month.`,
	RunE: runDistribute,
}

func init() {
	rootCmd.AddCommand(distributeCmd)
}

func runDistribute(_ *cobra.Command, args []string) error {
	period, err := resolvePeriod()
	if err != nil {
		return err
	}
	month := period.Month()

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	cats, err := st.ListCategories()
	if err != nil {
		return err
	}
	draft := ops.DraftFromCategories(cats)
	if err := applyOverrides(draft, args); err != nil {
		return err
	}

	if err := newService(st).Distribute(time.Now(), month, draft); err != nil {
		return err
	}

	total := decimal.Zero
	stuffed := 0
	for _, row := range draft {
		if row.Amount.IsPositive() {
			total = total.Add(row.Amount)
			stuffed++
		}
	}
	fmt.Printf("  Stuffed %d envelopes for %s, %s total.\n",
		stuffed, period.Label, cli.FormatMoney(total, cfg.General.Currency))
	return nil
}

// applyOverrides patches envelope=amount arguments into the draft in place.
func applyOverrides(draft []model.DraftAllocation, args []string) error {
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid override %q (want envelope=amount)", arg)
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("invalid amount in %q: %w", arg, err)
		}
		found := false
		for i := range draft {
			if draft[i].Category == name {
				draft[i].Amount = amount
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown envelope %q", name)
		}
	}
	return nil
}
