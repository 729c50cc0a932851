package fixedexpense

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GetFixedExpenseInput represents the input for fetching one fixed expense.
type GetFixedExpenseInput struct {
	ID int64
}

// GetFixedExpenseOutput represents the output of fetching one fixed expense.
type GetFixedExpenseOutput struct {
	FixedExpense *entity.FixedExpense
}

// GetFixedExpenseUseCase handles single fixed expense lookup.
// Retired expenses are still returned.
type GetFixedExpenseUseCase struct {
	expenseRepo adapter.FixedExpenseRepository
}

// NewGetFixedExpenseUseCase creates a new GetFixedExpenseUseCase instance.
func NewGetFixedExpenseUseCase(expenseRepo adapter.FixedExpenseRepository) *GetFixedExpenseUseCase {
	return &GetFixedExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the lookup.
func (uc *GetFixedExpenseUseCase) Execute(ctx context.Context, input GetFixedExpenseInput) (*GetFixedExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, findError(err)
	}

	return &GetFixedExpenseOutput{
		FixedExpense: expense,
	}, nil
}
