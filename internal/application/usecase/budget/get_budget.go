package budget

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GetBudgetInput represents the input for fetching one budget.
type GetBudgetInput struct {
	ID int64
}

// GetBudgetOutput represents the output of fetching one budget.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase handles single budget lookup.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	spending   *SpendingCalculator
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository, spending *SpendingCalculator) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
		spending:   spending,
	}
}

// Execute fetches the budget and recomputes its spending.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, findError(err)
	}

	if err := uc.spending.Apply(ctx, budget); err != nil {
		return nil, storageError("failed to compute budget spending", err)
	}

	return &GetBudgetOutput{
		Budget: budget,
	}, nil
}
