package fixedexpense

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// MonthlyCommitmentOutput is the sum of all active fixed expenses.
type MonthlyCommitmentOutput struct {
	Total       decimal.Decimal
	ActiveCount int
}

// MonthlyCommitmentUseCase totals what the active fixed expenses cost per month.
type MonthlyCommitmentUseCase struct {
	expenseRepo adapter.FixedExpenseRepository
}

// NewMonthlyCommitmentUseCase creates a new MonthlyCommitmentUseCase instance.
func NewMonthlyCommitmentUseCase(expenseRepo adapter.FixedExpenseRepository) *MonthlyCommitmentUseCase {
	return &MonthlyCommitmentUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute sums the active fixed expenses.
func (uc *MonthlyCommitmentUseCase) Execute(ctx context.Context) (*MonthlyCommitmentOutput, error) {
	expenses, err := uc.expenseRepo.FindByStatus(ctx, entity.StatusActive)
	if err != nil {
		return nil, storageError("failed to compute monthly commitment", err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &MonthlyCommitmentOutput{
		Total:       total,
		ActiveCount: len(expenses),
	}, nil
}
