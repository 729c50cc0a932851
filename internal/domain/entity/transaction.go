// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "EXPENSE"
	TransactionTypeIncome  TransactionType = "INCOME"
)

// ParseTransactionType normalizes a raw type string. The second return value
// is false when the value is not a known transaction type.
func ParseTransactionType(raw string) (TransactionType, bool) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(raw)))
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome:
		return t, true
	default:
		return t, false
	}
}

// Transaction represents a single ledger entry.
type Transaction struct {
	ID          int64
	Type        TransactionType
	Amount      decimal.Decimal // Always positive; Type carries the direction
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        NormalizeDate(date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsExpense reports whether the transaction counts against budgets.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// TransactionTotals represents aggregated totals for a set of transactions.
type TransactionTotals struct {
	IncomeTotal        decimal.Decimal
	ExpenseTotal       decimal.Decimal
	NetTotal           decimal.Decimal
	ExpensesByCategory map[string]decimal.Decimal
	Count              int
}

// SummarizeTransactions folds a slice of transactions into income/expense totals.
func SummarizeTransactions(transactions []*Transaction) *TransactionTotals {
	totals := &TransactionTotals{
		IncomeTotal:        decimal.Zero,
		ExpenseTotal:       decimal.Zero,
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	for _, t := range transactions {
		totals.Count++
		if t.IsExpense() {
			totals.ExpenseTotal = totals.ExpenseTotal.Add(t.Amount)
			totals.ExpensesByCategory[t.Category] = totals.ExpensesByCategory[t.Category].Add(t.Amount)
			continue
		}
		totals.IncomeTotal = totals.IncomeTotal.Add(t.Amount)
	}

	totals.NetTotal = totals.IncomeTotal.Sub(totals.ExpenseTotal)
	return totals
}
