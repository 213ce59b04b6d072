package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stuffer/internal/model"
)

const dateLayout = "2006-01-02"

// ErrNotFound is returned when an id does not exist.
var ErrNotFound = errors.New("record not found")

const txnColumns = "id, date, category, description, amount, type, budget_month, is_electronic, transfer_ref"

// ListTransactions returns the full transaction log, oldest first. The engine
// always works from a complete scan; there is no server-side filtering.
func (s *Store) ListTransactions() ([]model.Transaction, error) {
	rows, err := s.db.Query("SELECT " + txnColumns + " FROM transactions ORDER BY date, id")
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, txn)
	}
	return out, rows.Err()
}

// GetTransaction fetches one entry by id.
func (s *Store) GetTransaction(id int64) (model.Transaction, error) {
	rows, err := s.db.Query("SELECT "+txnColumns+" FROM transactions WHERE id = ?", id)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("fetching transaction %d: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	return scanTransaction(rows)
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var (
		txn          model.Transaction
		date, amount string
		typ          string
		electronic   int
	)
	if err := rows.Scan(&txn.ID, &date, &txn.Category, &txn.Description, &amount, &typ, &txn.BudgetMonth, &electronic, &txn.TransferRef); err != nil {
		return model.Transaction{}, fmt.Errorf("scanning transaction: %w", err)
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing transaction %d date %q: %w", txn.ID, date, err)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing transaction %d amount %q: %w", txn.ID, amount, err)
	}
	txn.Date = d
	txn.Amount = amt
	txn.Type = model.TxnType(typ)
	txn.IsElectronic = electronic != 0
	return txn, nil
}

// InsertTransaction appends one entry and returns its assigned id.
func (s *Store) InsertTransaction(txn model.Transaction) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO transactions (date, category, description, amount, type, budget_month, is_electronic, transfer_ref)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.Date.Format(dateLayout), txn.Category, txn.Description, txn.Amount.String(),
		string(txn.Type), txn.BudgetMonth, boolToInt(txn.IsElectronic), txn.TransferRef,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting transaction: %w", err)
	}
	return res.LastInsertId()
}

// InsertTransferPair writes both legs of a transfer in one database
// transaction. Either both legs land or neither does; a half-written transfer
// would break conservation.
func (s *Store) InsertTransferPair(a, b model.Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transfer: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, leg := range []model.Transaction{a, b} {
		if _, err := tx.Exec(
			`INSERT INTO transactions (date, category, description, amount, type, budget_month, is_electronic, transfer_ref)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			leg.Date.Format(dateLayout), leg.Category, leg.Description, leg.Amount.String(),
			string(leg.Type), leg.BudgetMonth, boolToInt(leg.IsElectronic), leg.TransferRef,
		); err != nil {
			return fmt.Errorf("inserting transfer leg for %q: %w", leg.Category, err)
		}
	}
	return tx.Commit()
}

// InsertTransactions appends a batch of entries in one database transaction.
// Used by bulk distribution so a failed write leaves no partial month.
func (s *Store) InsertTransactions(txns []model.Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting batch insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, txn := range txns {
		if _, err := tx.Exec(
			`INSERT INTO transactions (date, category, description, amount, type, budget_month, is_electronic, transfer_ref)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			txn.Date.Format(dateLayout), txn.Category, txn.Description, txn.Amount.String(),
			string(txn.Type), txn.BudgetMonth, boolToInt(txn.IsElectronic), txn.TransferRef,
		); err != nil {
			return fmt.Errorf("inserting entry for %q: %w", txn.Category, err)
		}
	}
	return tx.Commit()
}

// UpdateTransaction replaces the mutable fields of an existing entry.
func (s *Store) UpdateTransaction(id int64, txn model.Transaction) error {
	res, err := s.db.Exec(
		`UPDATE transactions
		 SET date = ?, category = ?, description = ?, amount = ?, type = ?, budget_month = ?, is_electronic = ?
		 WHERE id = ?`,
		txn.Date.Format(dateLayout), txn.Category, txn.Description, txn.Amount.String(),
		string(txn.Type), txn.BudgetMonth, boolToInt(txn.IsElectronic), id,
	)
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", id, err)
	}
	return checkAffected(res, id)
}

// DeleteTransaction removes one entry by id.
func (s *Store) DeleteTransaction(id int64) error {
	res, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	return checkAffected(res, id)
}

func checkAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
