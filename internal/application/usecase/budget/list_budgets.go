package budget

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ListBudgetsFilter selects which budgets to list. At most one criterion
// is applied, checked in field order; a zero filter lists everything.
type ListBudgetsFilter struct {
	Status    string
	Category  string
	StartFrom *time.Time
	StartTo   *time.Time
}

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	Filter ListBudgetsFilter
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase lists budgets with freshly computed spending.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	spending   *SpendingCalculator
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, spending *SpendingCalculator) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		spending:   spending,
	}
}

// Execute lists the budgets matching the filter.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	filter := input.Filter

	var (
		budgets []*entity.Budget
		err     error
	)
	switch {
	case filter.Status != "":
		status, ok := entity.ParseActivityStatus(filter.Status)
		if !ok {
			return nil, invalidStatusError()
		}
		budgets, err = uc.budgetRepo.FindByStatus(ctx, status)
	case filter.Category != "":
		budgets, err = uc.budgetRepo.FindByCategory(ctx, filter.Category)
	case filter.StartFrom != nil && filter.StartTo != nil:
		budgets, err = uc.budgetRepo.FindByStartDateRange(ctx, *filter.StartFrom, *filter.StartTo)
	default:
		budgets, err = uc.budgetRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, storageError("failed to list budgets", err)
	}

	if err := uc.spending.Apply(ctx, budgets...); err != nil {
		return nil, storageError("failed to compute budget spending", err)
	}

	return &ListBudgetsOutput{
		Budgets: budgets,
	}, nil
}
