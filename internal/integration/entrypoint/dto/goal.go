package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GoalRequest is the body of create and update calls.
type GoalRequest struct {
	Name           string          `json:"name" binding:"required"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	CurrentSavings decimal.Decimal `json:"current_savings"`
	IconName       string          `json:"icon_name"`
	Status         string          `json:"status"`
	Description    string          `json:"description"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	TargetAmount   string    `json:"target_amount"`
	CurrentSavings string    `json:"current_savings"`
	Progress       float64   `json:"progress"`
	IconName       string    `json:"icon_name"`
	Status         string    `json:"status"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

var hundred = decimal.NewFromInt(100)

// goalProgress returns savings as a percentage of the target, clamped to [0, 100].
func goalProgress(g *entity.FinancialGoal) float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	pct := g.CurrentSavings.Div(g.TargetAmount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	return pct.Round(2).InexactFloat64()
}

// ToGoalResponse converts a domain FinancialGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.FinancialGoal) GoalResponse {
	return GoalResponse{
		ID:             g.ID,
		Name:           g.Name,
		TargetAmount:   g.TargetAmount.String(),
		CurrentSavings: g.CurrentSavings.String(),
		Progress:       goalProgress(g),
		IconName:       g.IconName,
		Status:         string(g.Status),
		Description:    g.Description,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals.
func ToGoalListResponse(goals []*entity.FinancialGoal) GoalListResponse {
	items := make([]GoalResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: items}
}
