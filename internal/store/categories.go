package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"stuffer/internal/model"
)

// ListCategories returns all envelopes, name order.
func (s *Store) ListCategories() ([]model.Category, error) {
	rows, err := s.db.Query(
		`SELECT name, priority, target_amount, due_date, notes, is_fixed_cost, is_cashless_variable, default_allocation
		 FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Category
	for rows.Next() {
		var (
			c                  model.Category
			priority           int
			target, defAlloc   string
			dueDate            string
			fixed, cashlessVar int
		)
		if err := rows.Scan(&c.Name, &priority, &target, &dueDate, &c.Notes, &fixed, &cashlessVar, &defAlloc); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.Priority = model.Priority(priority)
		c.IsFixedCost = fixed != 0
		c.IsCashlessVariable = cashlessVar != 0
		c.TargetAmount, err = decimal.NewFromString(target)
		if err != nil {
			return nil, fmt.Errorf("parsing category %q target %q: %w", c.Name, target, err)
		}
		c.DefaultAllocation, err = decimal.NewFromString(defAlloc)
		if err != nil {
			return nil, fmt.Errorf("parsing category %q default allocation %q: %w", c.Name, defAlloc, err)
		}
		if dueDate != "" {
			d, err := time.Parse(dateLayout, dueDate)
			if err != nil {
				// A bad due date means "no deadline", not a dead store.
				log.WithFields(log.Fields{"category": c.Name, "due_date": dueDate}).Warn("malformed due date, treating as unset")
			} else {
				c.DueDate = d
			}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpsertCategory creates or replaces an envelope by name.
func (s *Store) UpsertCategory(c model.Category) error {
	dueDate := ""
	if !c.DueDate.IsZero() {
		dueDate = c.DueDate.Format(dateLayout)
	}
	_, err := s.db.Exec(
		`INSERT INTO categories (name, priority, target_amount, due_date, notes, is_fixed_cost, is_cashless_variable, default_allocation)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   priority = excluded.priority,
		   target_amount = excluded.target_amount,
		   due_date = excluded.due_date,
		   notes = excluded.notes,
		   is_fixed_cost = excluded.is_fixed_cost,
		   is_cashless_variable = excluded.is_cashless_variable,
		   default_allocation = excluded.default_allocation`,
		c.Name, int(c.Priority), c.TargetAmount.String(), dueDate, c.Notes,
		boolToInt(c.IsFixedCost), boolToInt(c.IsCashlessVariable), c.DefaultAllocation.String(),
	)
	if err != nil {
		return fmt.Errorf("upserting category %q: %w", c.Name, err)
	}
	return nil
}

// DeleteCategory removes an envelope. Its transactions stay in the log and
// aggregate as uncategorized from then on.
func (s *Store) DeleteCategory(name string) error {
	if _, err := s.db.Exec("DELETE FROM categories WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting category %q: %w", name, err)
	}
	return nil
}
