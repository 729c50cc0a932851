package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// FixedExpenseModel represents the fixed_expenses table in the database.
type FixedExpenseModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(150);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate   int             `gorm:"not null"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Status    string          `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedExpenseModel.
func (FixedExpenseModel) TableName() string {
	return "fixed_expenses"
}

// ToEntity converts a FixedExpenseModel to a domain FixedExpense entity.
func (m *FixedExpenseModel) ToEntity() *entity.FixedExpense {
	return &entity.FixedExpense{
		ID:        m.ID,
		Name:      m.Name,
		Amount:    m.Amount,
		DueDate:   m.DueDate,
		Category:  m.Category,
		Status:    entity.ActivityStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FixedExpenseFromEntity creates a FixedExpenseModel from a domain FixedExpense entity.
func FixedExpenseFromEntity(f *entity.FixedExpense) *FixedExpenseModel {
	return &FixedExpenseModel{
		ID:        f.ID,
		Name:      f.Name,
		Amount:    f.Amount,
		DueDate:   f.DueDate,
		Category:  f.Category,
		Status:    string(f.Status),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
