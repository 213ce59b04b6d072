package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"stuffer/internal/model"
)

// Uncategorized is the bucket for transactions whose category name no longer
// resolves. Dangling references are tolerated, never fatal.
const Uncategorized = "Uncategorized"

// TotalLabel names the synthetic aggregate row returned by Aggregate.
const TotalLabel = "Total"

type envelopeAcc struct {
	carryover decimal.Decimal
	planned   decimal.Decimal
	actual    decimal.Decimal
}

// Aggregate folds the complete transaction log into one balance-sheet row per
// envelope for the month identified by key, plus a synthetic Total row.
//
// Carryover is a full historical scan: everything planned minus everything
// spent in months strictly before key. There is deliberately no incremental
// state; an edit to any past month changes every later carryover, and always
// recomputing from the whole log is what keeps that correct.
//
// filter, when non-nil, restricts the result to the named envelopes and the
// Total row to their contribution alone. BankDeposit entries never appear in
// the ledger.
func Aggregate(txns []model.Transaction, cats []model.Category, key int, filter map[string]bool) ([]model.LedgerRow, model.LedgerRow) {
	catByName := make(map[string]model.Category, len(cats))
	for _, c := range cats {
		catByName[c.Name] = c
	}

	accs := make(map[string]*envelopeAcc)
	dangling := make(map[string]bool)
	for _, txn := range txns {
		if txn.Type == model.BankDeposit {
			continue
		}
		name := txn.Category
		if _, known := catByName[name]; !known {
			if name != "" && !dangling[name] {
				dangling[name] = true
				log.WithField("category", name).Warn("unknown category, aggregating as uncategorized")
			}
			name = Uncategorized
		}
		if filter != nil && !filter[name] {
			continue
		}
		acc := accs[name]
		if acc == nil {
			acc = &envelopeAcc{}
			accs[name] = acc
		}
		p := Classify(txn)
		switch {
		case p.Key < key:
			if txn.Type == model.Planned {
				acc.carryover = acc.carryover.Add(txn.Amount)
			} else {
				acc.carryover = acc.carryover.Sub(txn.Amount)
			}
		case p.Key == key:
			if txn.Type == model.Planned {
				acc.planned = acc.planned.Add(txn.Amount)
			} else {
				acc.actual = acc.actual.Add(txn.Amount)
			}
		}
	}

	rows := make([]model.LedgerRow, 0, len(accs))
	var total envelopeAcc
	for name, acc := range accs {
		if acc.carryover.IsZero() && acc.planned.IsZero() && acc.actual.IsZero() {
			continue
		}
		priority := model.PriorityDefault
		if c, ok := catByName[name]; ok {
			priority = c.Priority
		}
		rows = append(rows, buildRow(name, priority, *acc))
		total.carryover = total.carryover.Add(acc.carryover)
		total.planned = total.planned.Add(acc.planned)
		total.actual = total.actual.Add(acc.actual)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Priority != rows[j].Priority {
			return rows[i].Priority < rows[j].Priority
		}
		if !rows[i].Remaining.Equal(rows[j].Remaining) {
			return rows[i].Remaining.GreaterThan(rows[j].Remaining)
		}
		return rows[i].Category < rows[j].Category
	})

	// The Total utilization is recomputed from the summed columns, not
	// averaged over rows, so zero-budget envelopes carry no weight.
	return rows, buildRow(TotalLabel, model.PriorityDefault, total)
}

func buildRow(name string, priority model.Priority, acc envelopeAcc) model.LedgerRow {
	available := acc.carryover.Add(acc.planned)
	row := model.LedgerRow{
		Category:  name,
		Priority:  priority,
		Carryover: acc.carryover,
		Planned:   acc.planned,
		Actual:    acc.actual,
		Available: available,
		Remaining: available.Sub(acc.actual),
	}
	if !available.IsZero() {
		row.Utilization, _ = acc.actual.DivRound(available, 6).Float64()
	}
	return row
}

// NetBalance is an envelope's all-time planned minus actual: its current
// balance as of now, including months funded ahead. This feeds the sinking
// fund projector.
func NetBalance(txns []model.Transaction, category string) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		if txn.Category != category {
			continue
		}
		switch txn.Type {
		case model.Planned:
			balance = balance.Add(txn.Amount)
		case model.Actual:
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance
}

// MonthTotals is one month of the year dashboard: planned against actual.
type MonthTotals struct {
	Period  Period
	Planned decimal.Decimal
	Actual  decimal.Decimal
}

// YearTotals sums planned and actual per analysis month of the given year,
// January first. Months without activity are filled with zeros so charts show
// gaps instead of skipping them.
func YearTotals(txns []model.Transaction, year int) []MonthTotals {
	byKey := make(map[int]*MonthTotals, 12)
	out := make([]MonthTotals, 0, 12)
	for m := 1; m <= 12; m++ {
		key := year*100 + m
		out = append(out, MonthTotals{Period: PeriodForKey(key)})
		byKey[key] = &out[len(out)-1]
	}
	for _, txn := range txns {
		if txn.Type == model.BankDeposit {
			continue
		}
		mt, ok := byKey[Classify(txn).Key]
		if !ok {
			continue
		}
		if txn.Type == model.Planned {
			mt.Planned = mt.Planned.Add(txn.Amount)
		} else {
			mt.Actual = mt.Actual.Add(txn.Amount)
		}
	}
	return out
}
