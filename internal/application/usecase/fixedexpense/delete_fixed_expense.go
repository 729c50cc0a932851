package fixedexpense

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// DeleteFixedExpenseInput represents the input for fixed expense deletion.
type DeleteFixedExpenseInput struct {
	ID int64
}

// DeleteFixedExpenseOutput represents the output of fixed expense deletion.
type DeleteFixedExpenseOutput struct {
	Success bool
}

// DeleteFixedExpenseUseCase retires a fixed expense. The row is kept with
// status INACTIVE so history stays queryable.
type DeleteFixedExpenseUseCase struct {
	expenseRepo adapter.FixedExpenseRepository
	txManager   adapter.TransactionManager
}

// NewDeleteFixedExpenseUseCase creates a new DeleteFixedExpenseUseCase instance.
func NewDeleteFixedExpenseUseCase(
	expenseRepo adapter.FixedExpenseRepository,
	txManager adapter.TransactionManager,
) *DeleteFixedExpenseUseCase {
	return &DeleteFixedExpenseUseCase{
		expenseRepo: expenseRepo,
		txManager:   txManager,
	}
}

// Execute marks the fixed expense inactive.
func (uc *DeleteFixedExpenseUseCase) Execute(ctx context.Context, input DeleteFixedExpenseInput) (*DeleteFixedExpenseOutput, error) {
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
		if err != nil {
			return findError(err)
		}

		expense.Retire()
		if err := uc.expenseRepo.Update(ctx, expense); err != nil {
			return storageError("failed to retire fixed expense", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteFixedExpenseOutput{
		Success: true,
	}, nil
}
