package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stuffer/internal/model"
)

// ListLoans returns all loans, name order.
func (s *Store) ListLoans() ([]model.Loan, error) {
	rows, err := s.db.Query(
		`SELECT id, name, start_date, principal, total_interest, term_months, monthly_payment
		 FROM loans ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Loan
	for rows.Next() {
		var (
			l                          model.Loan
			start                      string
			principal, interest, payment string
		)
		if err := rows.Scan(&l.ID, &l.Name, &start, &principal, &interest, &l.TermMonths, &payment); err != nil {
			return nil, fmt.Errorf("scanning loan: %w", err)
		}
		l.StartDate, err = time.Parse(dateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("parsing loan %q start date %q: %w", l.Name, start, err)
		}
		if l.Principal, err = decimal.NewFromString(principal); err != nil {
			return nil, fmt.Errorf("parsing loan %q principal: %w", l.Name, err)
		}
		if l.TotalInterest, err = decimal.NewFromString(interest); err != nil {
			return nil, fmt.Errorf("parsing loan %q interest: %w", l.Name, err)
		}
		if l.MonthlyPayment, err = decimal.NewFromString(payment); err != nil {
			return nil, fmt.Errorf("parsing loan %q payment: %w", l.Name, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpsertLoan inserts a new loan (ID zero) or corrects an existing one.
func (s *Store) UpsertLoan(l model.Loan) (int64, error) {
	if l.ID == 0 {
		res, err := s.db.Exec(
			`INSERT INTO loans (name, start_date, principal, total_interest, term_months, monthly_payment)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			l.Name, l.StartDate.Format(dateLayout), l.Principal.String(),
			l.TotalInterest.String(), l.TermMonths, l.MonthlyPayment.String(),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting loan %q: %w", l.Name, err)
		}
		return res.LastInsertId()
	}
	_, err := s.db.Exec(
		`UPDATE loans SET name = ?, start_date = ?, principal = ?, total_interest = ?, term_months = ?, monthly_payment = ?
		 WHERE id = ?`,
		l.Name, l.StartDate.Format(dateLayout), l.Principal.String(),
		l.TotalInterest.String(), l.TermMonths, l.MonthlyPayment.String(), l.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating loan %d: %w", l.ID, err)
	}
	return l.ID, nil
}

// DeleteLoan removes a loan, typically once paid off or cancelled.
func (s *Store) DeleteLoan(id int64) error {
	if _, err := s.db.Exec("DELETE FROM loans WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting loan %d: %w", id, err)
	}
	return nil
}
