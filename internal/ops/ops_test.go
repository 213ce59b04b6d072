package ops

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"stuffer/internal/ledger"
	"stuffer/internal/model"
	"stuffer/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "budget.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return New(st), st
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testDate = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestRecord_RejectsNegativeAndBadType(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.Record(model.Transaction{Type: model.Actual, Date: testDate, Amount: dec("-5")})
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("negative amount error = %v, want ErrNegativeAmount", err)
	}
	_, err = svc.Record(model.Transaction{Type: "bogus", Date: testDate, Amount: dec("5")})
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("bad type error = %v, want ErrInvalidType", err)
	}

	txns, err := st.ListTransactions()
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txns) != 0 {
		t.Fatalf("rejected operations wrote %d rows", len(txns))
	}
}

func TestTransfer_Conservation(t *testing.T) {
	svc, st := newTestService(t)

	seed := []model.Transaction{
		{Type: model.Planned, Date: testDate, Category: "Fun", Amount: dec("100"), BudgetMonth: "2025-01"},
		{Type: model.Planned, Date: testDate, Category: "Savings", Amount: dec("50"), BudgetMonth: "2025-01"},
	}
	for _, txn := range seed {
		if _, err := svc.Record(txn); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	txns, _ := st.ListTransactions()
	combinedBefore := ledger.NetBalance(txns, "Fun").Add(ledger.NetBalance(txns, "Savings"))
	_, totalBefore := ledger.Aggregate(txns, nil, 202501, nil)

	if err := svc.Transfer("Fun", "Savings", dec("30"), testDate); err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	txns, err := st.ListTransactions()
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txns) != 4 {
		t.Fatalf("got %d transactions, want 4", len(txns))
	}

	if got := ledger.NetBalance(txns, "Fun"); !got.Equal(dec("70")) {
		t.Errorf("Fun balance = %s, want 70", got)
	}
	if got := ledger.NetBalance(txns, "Savings"); !got.Equal(dec("80")) {
		t.Errorf("Savings balance = %s, want 80", got)
	}
	combinedAfter := ledger.NetBalance(txns, "Fun").Add(ledger.NetBalance(txns, "Savings"))
	if !combinedAfter.Equal(combinedBefore) {
		t.Errorf("combined balance changed: %s -> %s", combinedBefore, combinedAfter)
	}

	// The aggregate Total row for the month is unchanged by a transfer.
	_, totalAfter := ledger.Aggregate(txns, nil, 202501, nil)
	if !totalAfter.Planned.Equal(totalBefore.Planned) {
		t.Errorf("total planned changed: %s -> %s", totalBefore.Planned, totalAfter.Planned)
	}

	// Both legs dated identically and cross-referenced.
	var legs []model.Transaction
	for _, txn := range txns {
		if txn.IsTransferLeg() {
			legs = append(legs, txn)
		}
	}
	if len(legs) != 2 {
		t.Fatalf("got %d transfer legs, want 2", len(legs))
	}
	if !legs[0].Date.Equal(legs[1].Date) || legs[0].TransferRef != legs[1].TransferRef {
		t.Errorf("legs not paired: %+v", legs)
	}
	if !legs[0].Amount.Add(legs[1].Amount).IsZero() {
		t.Errorf("legs sum to %s, want 0", legs[0].Amount.Add(legs[1].Amount))
	}
}

func TestTransfer_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Transfer("Fun", "Fun", dec("30"), testDate); !errors.Is(err, ErrSameCategory) {
		t.Errorf("same category error = %v, want ErrSameCategory", err)
	}
	if err := svc.Transfer("Fun", "Savings", dec("0"), testDate); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("zero amount error = %v, want ErrNonPositiveAmount", err)
	}
}

func TestDistribute_SkipsZeroRejectsNegative(t *testing.T) {
	svc, st := newTestService(t)
	month := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	draft := []model.DraftAllocation{
		{Category: "Groceries", Amount: dec("200")},
		{Category: "Fun", Amount: dec("0")},
		{Category: "Rent", Amount: dec("800")},
	}
	if err := svc.Distribute(testDate, month, draft); err != nil {
		t.Fatalf("Distribute: %v", err)
	}

	txns, _ := st.ListTransactions()
	if len(txns) != 2 {
		t.Fatalf("got %d rows, want 2 (zero row must be skipped)", len(txns))
	}
	for _, txn := range txns {
		if txn.Type != model.Planned || txn.BudgetMonth != "2025-02" {
			t.Errorf("distributed row wrong: %+v", txn)
		}
	}

	// One negative row rejects the whole draft.
	bad := []model.DraftAllocation{
		{Category: "Groceries", Amount: dec("10")},
		{Category: "Fun", Amount: dec("-1")},
	}
	if err := svc.Distribute(testDate, month, bad); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("negative draft error = %v, want ErrNegativeAmount", err)
	}
	txns, _ = st.ListTransactions()
	if len(txns) != 2 {
		t.Fatalf("rejected draft wrote rows: %d total", len(txns))
	}
}

func TestDraftFromCategories(t *testing.T) {
	cats := []model.Category{
		{Name: "Groceries", DefaultAllocation: dec("200")},
		{Name: "Fun"},
	}
	draft := DraftFromCategories(cats)
	if len(draft) != 2 || !draft[0].Amount.Equal(dec("200")) || !draft[1].Amount.IsZero() {
		t.Fatalf("draft = %+v", draft)
	}
}

func TestDeposit_ClampAndNonNegativity(t *testing.T) {
	svc, st := newTestService(t)

	// 40 owed: electronic spend from a cash envelope.
	if _, err := svc.Record(model.Transaction{
		Type: model.Actual, Date: testDate, Category: "Fun",
		Amount: dec("40"), IsElectronic: true,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := svc.Deposit(dec("50"), testDate); !errors.Is(err, ErrExceedsOwed) {
		t.Fatalf("over-deposit error = %v, want ErrExceedsOwed", err)
	}

	if _, err := svc.Deposit(dec("40"), testDate); err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	txns, _ := st.ListTransactions()
	cats, _ := st.ListCategories()
	if owed := ledger.Owed(txns, cats); !owed.IsZero() {
		t.Fatalf("owed after full deposit = %s, want 0", owed)
	}

	// Nothing owed: any further positive deposit is rejected.
	if _, err := svc.Deposit(dec("0.01"), testDate); !errors.Is(err, ErrExceedsOwed) {
		t.Fatalf("deposit on zero balance error = %v, want ErrExceedsOwed", err)
	}
	if _, err := svc.Deposit(dec("0"), testDate); !errors.Is(err, ErrNonPositiveAmount) {
		t.Fatalf("zero deposit error = %v, want ErrNonPositiveAmount", err)
	}
}
