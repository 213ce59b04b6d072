// Package model defines domain types for stuffer envelopes and the transaction log.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType discriminates the three kinds of log entries.
type TxnType string

const (
	// Planned is money allocated to an envelope for a target month ("SOLL").
	Planned TxnType = "planned"
	// Actual is money spent from an envelope ("IST").
	Actual TxnType = "actual"
	// BankDeposit is physical cash returned to the bank account. It is
	// category-independent and never appears in the monthly ledger.
	BankDeposit TxnType = "bank_deposit"
)

// Valid reports whether t is one of the known transaction types.
func (t TxnType) Valid() bool {
	switch t {
	case Planned, Actual, BankDeposit:
		return true
	}
	return false
}

// Transaction is one row of the append-only log. Amounts are entered
// non-negative; only generated transfer legs carry a negative amount.
type Transaction struct {
	ID          int64
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
	Type        TxnType

	// BudgetMonth is the "2006-01" target month for Planned entries. It may
	// point past the recorded date ("fund next month early"). Empty or
	// malformed values fall back to the date's month.
	BudgetMonth string

	// IsElectronic marks Actual entries paid by card/online instead of
	// physical cash from the envelope.
	IsElectronic bool

	// TransferRef links the two legs of an envelope transfer. Both legs
	// share the same uuid; empty for ordinary entries.
	TransferRef string
}

// IsTransferLeg reports whether the entry was generated by a transfer.
func (t Transaction) IsTransferLeg() bool {
	return t.TransferRef != ""
}
