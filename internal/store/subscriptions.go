package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stuffer/internal/model"
)

// ListSubscriptions returns all subscriptions, name order.
func (s *Store) ListSubscriptions() ([]model.Subscription, error) {
	rows, err := s.db.Query(
		`SELECT id, name, amount, billing_cycle, category, start_date
		 FROM subscriptions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Subscription
	for rows.Next() {
		var (
			sub           model.Subscription
			amount, cycle string
			start         string
		)
		if err := rows.Scan(&sub.ID, &sub.Name, &amount, &cycle, &sub.Category, &start); err != nil {
			return nil, fmt.Errorf("scanning subscription: %w", err)
		}
		if sub.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parsing subscription %q amount: %w", sub.Name, err)
		}
		sub.Cycle = model.BillingCycle(cycle)
		if start != "" {
			d, err := time.Parse(dateLayout, start)
			if err != nil {
				return nil, fmt.Errorf("parsing subscription %q start date: %w", sub.Name, err)
			}
			sub.StartDate = d
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// UpsertSubscription inserts (ID zero) or updates a subscription.
func (s *Store) UpsertSubscription(sub model.Subscription) (int64, error) {
	start := ""
	if !sub.StartDate.IsZero() {
		start = sub.StartDate.Format(dateLayout)
	}
	if sub.ID == 0 {
		res, err := s.db.Exec(
			`INSERT INTO subscriptions (name, amount, billing_cycle, category, start_date)
			 VALUES (?, ?, ?, ?, ?)`,
			sub.Name, sub.Amount.String(), string(sub.Cycle), sub.Category, start,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting subscription %q: %w", sub.Name, err)
		}
		return res.LastInsertId()
	}
	_, err := s.db.Exec(
		`UPDATE subscriptions SET name = ?, amount = ?, billing_cycle = ?, category = ?, start_date = ?
		 WHERE id = ?`,
		sub.Name, sub.Amount.String(), string(sub.Cycle), sub.Category, start, sub.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating subscription %d: %w", sub.ID, err)
	}
	return sub.ID, nil
}

// DeleteSubscription removes a subscription.
func (s *Store) DeleteSubscription(id int64) error {
	if _, err := s.db.Exec("DELETE FROM subscriptions WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting subscription %d: %w", id, err)
	}
	return nil
}
