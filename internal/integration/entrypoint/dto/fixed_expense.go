package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// FixedExpenseRequest is the body of create and update calls.
type FixedExpenseRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  int             `json:"due_date" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Status   string          `json:"status"`
}

// FixedExpenseResponse represents a single fixed expense in API responses.
type FixedExpenseResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	DueDate   int       `json:"due_date"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FixedExpenseListResponse represents the response for listing fixed expenses.
type FixedExpenseListResponse struct {
	FixedExpenses []FixedExpenseResponse `json:"fixed_expenses"`
}

// MonthlyCommitmentResponse is the total of active fixed expenses.
type MonthlyCommitmentResponse struct {
	Total       string `json:"total"`
	ActiveCount int    `json:"active_count"`
}

// ToFixedExpenseResponse converts a domain FixedExpense entity to a FixedExpenseResponse DTO.
func ToFixedExpenseResponse(f *entity.FixedExpense) FixedExpenseResponse {
	return FixedExpenseResponse{
		ID:        f.ID,
		Name:      f.Name,
		Amount:    f.Amount.String(),
		DueDate:   f.DueDate,
		Category:  f.Category,
		Status:    string(f.Status),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// ToFixedExpenseListResponse converts a list of fixed expenses.
func ToFixedExpenseListResponse(expenses []*entity.FixedExpense) FixedExpenseListResponse {
	items := make([]FixedExpenseResponse, len(expenses))
	for i, f := range expenses {
		items[i] = ToFixedExpenseResponse(f)
	}
	return FixedExpenseListResponse{FixedExpenses: items}
}
