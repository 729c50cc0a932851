package budget

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	ID int64
}

// DeleteBudgetOutput represents the output of budget deletion.
type DeleteBudgetOutput struct {
	Success bool
}

// DeleteBudgetUseCase handles permanent budget removal.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	txManager  adapter.TransactionManager
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, txManager adapter.TransactionManager) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		txManager:  txManager,
	}
}

// Execute deletes the budget.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.budgetRepo.Delete(ctx, input.ID); err != nil {
			return findError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteBudgetOutput{
		Success: true,
	}, nil
}
