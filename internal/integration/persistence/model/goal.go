package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GoalModel represents the financial_goals table in the database.
type GoalModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	Name           string          `gorm:"type:varchar(150);not null"`
	TargetAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentSavings decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IconName       string          `gorm:"type:varchar(50)"`
	Status         string          `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Description    string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "financial_goals"
}

// ToEntity converts a GoalModel to a domain FinancialGoal entity.
func (m *GoalModel) ToEntity() *entity.FinancialGoal {
	return &entity.FinancialGoal{
		ID:             m.ID,
		Name:           m.Name,
		TargetAmount:   m.TargetAmount,
		CurrentSavings: m.CurrentSavings,
		IconName:       m.IconName,
		Status:         entity.GoalStatus(m.Status),
		Description:    m.Description,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain FinancialGoal entity.
func GoalFromEntity(goal *entity.FinancialGoal) *GoalModel {
	return &GoalModel{
		ID:             goal.ID,
		Name:           goal.Name,
		TargetAmount:   goal.TargetAmount,
		CurrentSavings: goal.CurrentSavings,
		IconName:       goal.IconName,
		Status:         string(goal.Status),
		Description:    goal.Description,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}
