package budget

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	BudgetFields
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	spending   *SpendingCalculator
	txManager  adapter.TransactionManager
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	spending *SpendingCalculator,
	txManager adapter.TransactionManager,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		spending:   spending,
		txManager:  txManager,
	}
}

// Execute validates and stores the budget, then returns it with its current spending.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	fields, err := validateFields(input.BudgetFields)
	if err != nil {
		return nil, err
	}

	budget := entity.NewBudget(
		input.Category,
		input.Amount,
		input.StartDate,
		input.EndDate,
		fields.period,
		fields.status,
		input.Description,
	)

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.budgetRepo.Create(ctx, budget); err != nil {
			return storageError("failed to create budget", err)
		}
		if err := uc.spending.Apply(ctx, budget); err != nil {
			return storageError("failed to compute budget spending", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}
