package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// BudgetRequest is the body of create and update calls.
// Any spent value sent by the client is ignored.
type BudgetRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   string          `json:"start_date" binding:"required"`
	EndDate     string          `json:"end_date" binding:"required"`
	Period      string          `json:"period"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Spent       string    `json:"spent"`
	Remaining   string    `json:"remaining"`
	Exceeded    bool      `json:"exceeded"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Period      string    `json:"period"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID,
		Category:    b.Category,
		Amount:      b.Amount.String(),
		Spent:       b.Spent.String(),
		Remaining:   b.Remaining().String(),
		Exceeded:    b.Exceeded(),
		StartDate:   formatDate(b.StartDate),
		EndDate:     formatDate(b.EndDate),
		Period:      string(b.Period),
		Status:      string(b.Status),
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of budgets.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: items}
}
