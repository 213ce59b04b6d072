// Package cmd implements the stuffer CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stuffer/internal/config"
	"stuffer/internal/ledger"
	"stuffer/internal/model"
	"stuffer/internal/ops"
	"stuffer/internal/store"
)

var (
	flagDB    string
	flagMonth string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "stuffer",
	Short: "Cash stuffing budget planner",
	Long:  "Plan monthly envelopes, track spending against them, and keep cash and card reconciled.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagQuiet {
			log.SetLevel(log.ErrorLevel)
		}
	},
	RunE: runLedger,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Database path (default: config, then XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Analysis month, e.g. 2025-03 (default: current month)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings")
}

// openStore resolves the database path (flag, config, default) and opens it.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("config unreadable, using defaults")
		cfg = config.DefaultConfig()
	}
	path := flagDB
	if path == "" {
		path = config.DBPath(cfg)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, cfg, fmt.Errorf("opening store at %s: %w", path, err)
	}
	return st, cfg, nil
}

// loadLedger does the full read every view starts from: the complete
// transaction log plus the envelope set.
func loadLedger(st *store.Store) ([]model.Transaction, []model.Category, error) {
	txns, err := st.ListTransactions()
	if err != nil {
		return nil, nil, err
	}
	cats, err := st.ListCategories()
	if err != nil {
		return nil, nil, err
	}
	return txns, cats, nil
}

// resolvePeriod picks the analysis month from --month, defaulting to now.
func resolvePeriod() (ledger.Period, error) {
	if flagMonth == "" {
		return ledger.PeriodOf(time.Now()), nil
	}
	t, err := time.Parse(ledger.BudgetMonthLayout, strings.TrimSpace(flagMonth))
	if err != nil {
		return ledger.Period{}, fmt.Errorf("invalid --month %q (want e.g. 2025-03): %w", flagMonth, err)
	}
	return ledger.PeriodOf(t), nil
}

// newService wires the allocation operations over an open store.
func newService(st *store.Store) *ops.Service {
	return ops.New(st)
}
