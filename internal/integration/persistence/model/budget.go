package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// There is no spent column; spending is derived from the ledger on read.
type BudgetModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate   time.Time       `gorm:"not null;index"`
	EndDate     time.Time       `gorm:"not null"`
	Period      string          `gorm:"type:varchar(20);not null;default:'MONTHLY'"`
	Status      string          `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity with zero spending.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:          m.ID,
		Category:    m.Category,
		Amount:      m.Amount,
		Spent:       decimal.Zero,
		StartDate:   entity.NormalizeDate(m.StartDate),
		EndDate:     entity.NormalizeDate(m.EndDate),
		Period:      entity.BudgetPeriod(m.Period),
		Status:      entity.ActivityStatus(m.Status),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(b *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:          b.ID,
		Category:    b.Category,
		Amount:      b.Amount,
		StartDate:   entity.NormalizeDate(b.StartDate),
		EndDate:     entity.NormalizeDate(b.EndDate),
		Period:      string(b.Period),
		Status:      string(b.Status),
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
