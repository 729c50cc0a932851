package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "ACTIVE"
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusDeleted   GoalStatus = "DELETED"
)

// ParseGoalStatus normalizes a raw status; empty input defaults to ACTIVE.
func ParseGoalStatus(raw string) (GoalStatus, bool) {
	if strings.TrimSpace(raw) == "" {
		return GoalStatusActive, true
	}
	s := GoalStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusDeleted:
		return s, true
	default:
		return s, false
	}
}

// FinancialGoal represents a savings target.
// Status is set by the caller; nothing here moves a goal to COMPLETED.
type FinancialGoal struct {
	ID             int64
	Name           string
	TargetAmount   decimal.Decimal
	CurrentSavings decimal.Decimal
	IconName       string
	Status         GoalStatus
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewFinancialGoal creates a new FinancialGoal entity.
func NewFinancialGoal(
	name string,
	targetAmount, currentSavings decimal.Decimal,
	iconName string,
	status GoalStatus,
	description string,
) *FinancialGoal {
	now := time.Now().UTC()

	return &FinancialGoal{
		Name:           name,
		TargetAmount:   targetAmount,
		CurrentSavings: currentSavings,
		IconName:       iconName,
		Status:         status,
		Description:    description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
