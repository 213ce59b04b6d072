package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Priority orders envelopes for display grouping. Lower sorts first.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
	PriorityDefault
)

// String returns the display label for a priority tier.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Default"
	}
}

// ParsePriority maps a label back to its tier, defaulting to PriorityDefault.
func ParsePriority(s string) Priority {
	switch s {
	case "High", "high":
		return PriorityHigh
	case "Medium", "medium":
		return PriorityMedium
	case "Low", "low":
		return PriorityLow
	}
	return PriorityDefault
}

// Category is a named budgeting envelope. Name is the unique key; there is no
// enforced foreign key from transactions, dangling references aggregate under
// "Uncategorized".
type Category struct {
	Name     string
	Priority Priority
	Notes    string

	// Sinking-fund goal. TargetAmount <= 0 means no goal; a zero DueDate
	// means no deadline.
	TargetAmount decimal.Decimal
	DueDate      time.Time

	// IsFixedCost marks obligations paid automatically from the main
	// account (rent, contracts). Excluded from cash-withdrawal totals.
	IsFixedCost bool

	// IsCashlessVariable marks variable spending that is always electronic.
	// Budgeted normally but excluded from cash-withdrawal totals.
	IsCashlessVariable bool

	// DefaultAllocation prefills the bulk distribution draft.
	DefaultAllocation decimal.Decimal
}

// HasGoal reports whether the envelope carries a sinking-fund target.
func (c Category) HasGoal() bool {
	return c.TargetAmount.IsPositive()
}
