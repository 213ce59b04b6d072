// Package ops implements the mutating allocation operations: recording
// entries, envelope transfers, bulk monthly distribution, and back-to-bank
// deposits. All validation happens before any write; a rejected operation
// leaves the log untouched.
package ops

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stuffer/internal/ledger"
	"stuffer/internal/model"
	"stuffer/internal/store"
)

// Validation errors, surfaced before any write.
var (
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrSameCategory      = errors.New("transfer source and destination are the same envelope")
	ErrExceedsOwed       = errors.New("deposit exceeds the outstanding back-to-bank balance")
)

// Service executes allocation operations against the record store.
type Service struct {
	store *store.Store
}

// New returns a Service backed by st.
func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Record validates and appends a single user-entered transaction. Amounts are
// non-negative at this boundary; only generated transfer legs go below zero.
func (s *Service) Record(txn model.Transaction) (int64, error) {
	if !txn.Type.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidType, txn.Type)
	}
	if txn.Amount.IsNegative() {
		return 0, ErrNegativeAmount
	}
	return s.store.InsertTransaction(txn)
}

// Update replaces an existing entry after the same validation as Record.
func (s *Service) Update(id int64, txn model.Transaction) error {
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, txn.Type)
	}
	if txn.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return s.store.UpdateTransaction(id, txn)
}

// Delete removes an entry by id.
func (s *Service) Delete(id int64) error {
	return s.store.DeleteTransaction(id)
}

// Transfer moves amount from one envelope to another on the given date. It
// emits two Planned entries, exact negatives of each other, sharing a uuid
// cross-reference. The pair is written atomically: conservation would break
// if only one leg landed.
func (s *Service) Transfer(from, to string, amount decimal.Decimal, date time.Time) error {
	if from == to {
		return ErrSameCategory
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	ref := uuid.NewString()
	month := date.Format(ledger.BudgetMonthLayout)
	out := model.Transaction{
		Date:        date,
		Category:    from,
		Description: "Transfer to " + to,
		Amount:      amount.Neg(),
		Type:        model.Planned,
		BudgetMonth: month,
		TransferRef: ref,
	}
	in := model.Transaction{
		Date:        date,
		Category:    to,
		Description: "Transfer from " + from,
		Amount:      amount,
		Type:        model.Planned,
		BudgetMonth: month,
		TransferRef: ref,
	}
	return s.store.InsertTransferPair(out, in)
}

// Distribute commits a draft monthly budget: one Planned entry per envelope
// with a positive amount, all targeting the given month. Zero rows are
// skipped, not recorded as no-ops; a negative row rejects the whole draft.
func (s *Service) Distribute(date, month time.Time, draft []model.DraftAllocation) error {
	budgetMonth := month.Format(ledger.BudgetMonthLayout)
	txns := make([]model.Transaction, 0, len(draft))
	for _, row := range draft {
		if row.Amount.IsNegative() {
			return fmt.Errorf("allocation for %q: %w", row.Category, ErrNegativeAmount)
		}
		if row.Amount.IsZero() {
			continue
		}
		txns = append(txns, model.Transaction{
			Date:        date,
			Category:    row.Category,
			Description: "Monthly budget " + budgetMonth,
			Amount:      row.Amount,
			Type:        model.Planned,
			BudgetMonth: budgetMonth,
		})
	}
	if len(txns) == 0 {
		return nil
	}
	return s.store.InsertTransactions(txns)
}

// DraftFromCategories prefills a distribution draft with each envelope's
// default allocation, in the given category order.
func DraftFromCategories(cats []model.Category) []model.DraftAllocation {
	draft := make([]model.DraftAllocation, 0, len(cats))
	for _, c := range cats {
		draft = append(draft, model.DraftAllocation{Category: c.Name, Amount: c.DefaultAllocation})
	}
	return draft
}

// Deposit records physical cash going back to the bank. The amount must be
// positive and no more than the currently owed balance; depositing money that
// was never in an envelope makes no sense.
func (s *Service) Deposit(amount decimal.Decimal, date time.Time) (int64, error) {
	if !amount.IsPositive() {
		return 0, ErrNonPositiveAmount
	}
	txns, err := s.store.ListTransactions()
	if err != nil {
		return 0, err
	}
	cats, err := s.store.ListCategories()
	if err != nil {
		return 0, err
	}
	owed := ledger.Owed(txns, cats)
	if amount.GreaterThan(owed) {
		return 0, fmt.Errorf("%w: owed %s, got %s", ErrExceedsOwed, owed, amount)
	}
	return s.store.InsertTransaction(model.Transaction{
		Date:        date,
		Description: "Back to bank",
		Amount:      amount,
		Type:        model.BankDeposit,
	})
}
