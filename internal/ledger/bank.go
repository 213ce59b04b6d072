package ledger

import (
	"github.com/shopspring/decimal"

	"stuffer/internal/model"
)

// Owed computes the back-to-bank balance: cash sitting in physical envelopes
// that was actually spent by card or online, minus everything already
// redeposited. The discrepancy has no period boundary; it persists across
// months until a BankDeposit reconciles it, so the scan always covers the
// entire history.
//
// Electronic spending in fixed-cost or cashless-variable envelopes is
// excluded: that money was never withdrawn as cash, so it creates no
// mismatch.
func Owed(txns []model.Transaction, cats []model.Category) decimal.Decimal {
	excluded := make(map[string]bool, len(cats))
	for _, c := range cats {
		if c.IsFixedCost || c.IsCashlessVariable {
			excluded[c.Name] = true
		}
	}

	owed := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case model.Actual:
			if txn.IsElectronic && !excluded[txn.Category] {
				owed = owed.Add(txn.Amount)
			}
		case model.BankDeposit:
			owed = owed.Sub(txn.Amount)
		}
	}
	return owed
}
