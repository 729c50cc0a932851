package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// TransactionRequest is the body of create and update calls.
type TransactionRequest struct {
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CategoryAmount is one entry of a per-category breakdown.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// TransactionSummaryResponse represents ledger totals.
type TransactionSummaryResponse struct {
	IncomeTotal        string           `json:"income_total"`
	ExpenseTotal       string           `json:"expense_total"`
	NetTotal           string           `json:"net_total"`
	TransactionCount   int              `json:"transaction_count"`
	ExpensesByCategory []CategoryAmount `json:"expenses_by_category"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount.String(),
		Category:    t.Category,
		Description: t.Description,
		Date:        formatDate(t.Date),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Transactions: items}
}

// ToTransactionSummaryResponse converts ledger totals; categories are sorted by name.
func ToTransactionSummaryResponse(totals *entity.TransactionTotals) TransactionSummaryResponse {
	categories := make([]CategoryAmount, 0, len(totals.ExpensesByCategory))
	for _, name := range sortedKeys(totals.ExpensesByCategory) {
		categories = append(categories, CategoryAmount{
			Category: name,
			Amount:   totals.ExpensesByCategory[name].String(),
		})
	}

	return TransactionSummaryResponse{
		IncomeTotal:        totals.IncomeTotal.String(),
		ExpenseTotal:       totals.ExpenseTotal.String(),
		NetTotal:           totals.NetTotal.String(),
		TransactionCount:   totals.Count,
		ExpensesByCategory: categories,
	}
}
