package fixedexpense

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ListFixedExpensesInput selects which fixed expenses to list.
// ActiveOnly takes precedence over Category; a zero input lists everything.
type ListFixedExpensesInput struct {
	ActiveOnly bool
	Category   string
}

// ListFixedExpensesOutput represents the output of listing fixed expenses.
type ListFixedExpensesOutput struct {
	FixedExpenses []*entity.FixedExpense
}

// ListFixedExpensesUseCase lists fixed expenses.
type ListFixedExpensesUseCase struct {
	expenseRepo adapter.FixedExpenseRepository
}

// NewListFixedExpensesUseCase creates a new ListFixedExpensesUseCase instance.
func NewListFixedExpensesUseCase(expenseRepo adapter.FixedExpenseRepository) *ListFixedExpensesUseCase {
	return &ListFixedExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists the fixed expenses matching the input.
func (uc *ListFixedExpensesUseCase) Execute(ctx context.Context, input ListFixedExpensesInput) (*ListFixedExpensesOutput, error) {
	var (
		expenses []*entity.FixedExpense
		err      error
	)
	switch {
	case input.ActiveOnly:
		expenses, err = uc.expenseRepo.FindByStatus(ctx, entity.StatusActive)
	case input.Category != "":
		expenses, err = uc.expenseRepo.FindByCategory(ctx, input.Category)
	default:
		expenses, err = uc.expenseRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, storageError("failed to list fixed expenses", err)
	}

	return &ListFixedExpensesOutput{
		FixedExpenses: expenses,
	}, nil
}
