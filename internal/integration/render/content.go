// Package render produces report artifacts: the stored JSON snapshot and
// the downloadable XLSX workbook.
package render

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// Content is the snapshot document stored in Report.Content.
type Content struct {
	TotalIncome      decimal.Decimal  `json:"totalIncome"`
	TotalExpenses    decimal.Decimal  `json:"totalExpenses"`
	Balance          decimal.Decimal  `json:"balance"`
	TransactionCount int              `json:"transactionCount"`
	Periods          []PeriodTotal    `json:"periods"`
	Categories       []CategoryTotal  `json:"categories"`
	Transactions     []TransactionRow `json:"transactions"`
}

// PeriodTotal is the income and expense of one timeframe bucket.
type PeriodTotal struct {
	Period   string          `json:"period"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// TransactionRow is one ledger entry as it stood when the snapshot was taken.
type TransactionRow struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
}

// BuildContent aggregates transactions into a snapshot document.
// Periods are sorted chronologically and categories by name; transaction
// rows keep the order they were given in.
func BuildContent(timeframe entity.ReportTimeframe, transactions []*entity.Transaction) *Content {
	totals := entity.SummarizeTransactions(transactions)

	buckets := make(map[string]*PeriodTotal)
	for _, t := range transactions {
		key := timeframe.BucketKey(t.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &PeriodTotal{Period: key, Income: decimal.Zero, Expenses: decimal.Zero}
			buckets[key] = bucket
		}
		if t.IsExpense() {
			bucket.Expenses = bucket.Expenses.Add(t.Amount)
		} else {
			bucket.Income = bucket.Income.Add(t.Amount)
		}
	}

	periods := make([]PeriodTotal, 0, len(buckets))
	for _, b := range buckets {
		periods = append(periods, *b)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Period < periods[j].Period })

	categories := make([]CategoryTotal, 0, len(totals.ExpensesByCategory))
	for name, total := range totals.ExpensesByCategory {
		categories = append(categories, CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })

	rows := make([]TransactionRow, len(transactions))
	for i, t := range transactions {
		rows[i] = TransactionRow{
			ID:          t.ID,
			Date:        t.Date.Format(entity.DateLayout),
			Type:        string(t.Type),
			Amount:      t.Amount,
			Category:    t.Category,
			Description: t.Description,
		}
	}

	return &Content{
		TotalIncome:      totals.IncomeTotal,
		TotalExpenses:    totals.ExpenseTotal,
		Balance:          totals.NetTotal,
		TransactionCount: totals.Count,
		Periods:          periods,
		Categories:       categories,
		Transactions:     rows,
	}
}

// ParseContent decodes a stored snapshot document.
func ParseContent(raw string) (*Content, error) {
	var content Content
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, fmt.Errorf("failed to decode report content: %w", err)
	}
	return &content, nil
}
