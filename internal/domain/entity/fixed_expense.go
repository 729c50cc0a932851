package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedExpense is a recurring monthly obligation such as rent.
// Deleting one only retires it (Status=INACTIVE).
type FixedExpense struct {
	ID        int64
	Name      string
	Amount    decimal.Decimal
	DueDate   int // Day of month, 1..31
	Category  string
	Status    ActivityStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFixedExpense creates a new FixedExpense entity.
func NewFixedExpense(name string, amount decimal.Decimal, dueDate int, category string, status ActivityStatus) *FixedExpense {
	now := time.Now().UTC()

	return &FixedExpense{
		Name:      name,
		Amount:    amount,
		DueDate:   dueDate,
		Category:  category,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Retire marks the expense inactive.
func (f *FixedExpense) Retire() {
	f.Status = StatusInactive
	f.UpdatedAt = time.Now().UTC()
}

// IsActive reports whether the expense is still being paid.
func (f *FixedExpense) IsActive() bool {
	return f.Status == StatusActive
}
