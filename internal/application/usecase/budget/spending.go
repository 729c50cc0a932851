// Package budget contains budget tracking use cases.
package budget

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// SpendingCalculator derives Budget.Spent from the ledger.
// It runs on every read; nothing is cached between calls.
type SpendingCalculator struct {
	transactionRepo adapter.TransactionRepository
}

// NewSpendingCalculator creates a new SpendingCalculator instance.
func NewSpendingCalculator(transactionRepo adapter.TransactionRepository) *SpendingCalculator {
	return &SpendingCalculator{
		transactionRepo: transactionRepo,
	}
}

// Apply sets Spent on each budget to the sum of EXPENSE transactions in the
// budget's category dated within its window.
func (c *SpendingCalculator) Apply(ctx context.Context, budgets ...*entity.Budget) error {
	for _, b := range budgets {
		amounts, err := c.transactionRepo.ExpenseAmounts(ctx, b.Category, b.StartDate, b.EndDate)
		if err != nil {
			return err
		}

		spent := decimal.Zero
		for _, amount := range amounts {
			spent = spent.Add(amount)
		}
		b.Spent = spent

		slog.Debug("Budget spending recomputed",
			"budget_id", b.ID,
			"category", b.Category,
			"spent", spent.String(),
			"matches", len(amounts),
		)
	}
	return nil
}
