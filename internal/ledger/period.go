// Package ledger implements the envelope computation engine: period
// classification, balance-sheet aggregation, sinking-fund projection,
// back-to-bank reconciliation, and loan amortization. Every function is a
// pure fold over the full transaction log; nothing here caches state, so
// recomputation after historical edits is always correct.
package ledger

import (
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"stuffer/internal/model"
)

// BudgetMonthLayout is the wire format of Transaction.BudgetMonth.
const BudgetMonthLayout = "2006-01"

// Period identifies an analysis month: a human label and a totally-ordered
// sort key (year*100 + month).
type Period struct {
	Key   int
	Label string
}

// PeriodOf returns the analysis period for a point in time.
func PeriodOf(t time.Time) Period {
	return Period{
		Key:   t.Year()*100 + int(t.Month()),
		Label: t.Month().String() + " " + t.Format("2006"),
	}
}

// Month returns the first day of the period's month.
func (p Period) Month() time.Time {
	year, month := p.Key/100, p.Key%100
	if month < 1 || month > 12 {
		month = 1
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodForKey rebuilds a Period from its sort key.
func PeriodForKey(key int) Period {
	year, month := key/100, key%100
	if month < 1 || month > 12 {
		month = 1
	}
	return PeriodOf(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
}

// Classify assigns a transaction to its analysis month. Planned entries fund
// the month named by BudgetMonth regardless of when they were recorded;
// spending and deposits are always attributed to the date they happened.
// A malformed BudgetMonth is never fatal: it logs and falls back to the
// entry's date.
func Classify(txn model.Transaction) Period {
	if txn.Type == model.Planned && txn.BudgetMonth != "" {
		target, err := time.Parse(BudgetMonthLayout, strings.TrimSpace(txn.BudgetMonth))
		if err != nil {
			log.WithFields(log.Fields{
				"txn":          txn.ID,
				"budget_month": txn.BudgetMonth,
			}).Warn("malformed budget month, falling back to entry date")
			return PeriodOf(txn.Date)
		}
		return PeriodOf(target)
	}
	return PeriodOf(txn.Date)
}

// MonthsBetween is the calendar year/month difference from a to b. A goal due
// in 20 days is still one month out; day-of-month never enters the result.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// Periods returns the distinct analysis periods present in the log, most
// recent first. BankDeposit entries are skipped; they belong to no month.
func Periods(txns []model.Transaction) []Period {
	seen := make(map[int]Period)
	for _, txn := range txns {
		if txn.Type == model.BankDeposit {
			continue
		}
		p := Classify(txn)
		seen[p.Key] = p
	}
	out := make([]Period, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key > out[j].Key })
	return out
}

// InPeriod returns the ledger-visible transactions classified into the given
// month, newest date first.
func InPeriod(txns []model.Transaction, key int) []model.Transaction {
	var out []model.Transaction
	for _, txn := range txns {
		if txn.Type == model.BankDeposit {
			continue
		}
		if Classify(txn).Key == key {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
