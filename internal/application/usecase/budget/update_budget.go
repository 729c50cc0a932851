package budget

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// UpdateBudgetInput represents the input for a full budget update.
type UpdateBudgetInput struct {
	ID int64
	BudgetFields
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	spending   *SpendingCalculator
	txManager  adapter.TransactionManager
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	spending *SpendingCalculator,
	txManager adapter.TransactionManager,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		spending:   spending,
		txManager:  txManager,
	}
}

// Execute replaces every caller-editable field of the budget.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	fields, err := validateFields(input.BudgetFields)
	if err != nil {
		return nil, err
	}

	var budget *entity.Budget
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		// Find the existing budget
		existing, err := uc.budgetRepo.FindByID(ctx, input.ID)
		if err != nil {
			return findError(err)
		}

		existing.Category = input.Category
		existing.Amount = input.Amount
		existing.StartDate = entity.NormalizeDate(input.StartDate)
		existing.EndDate = entity.NormalizeDate(input.EndDate)
		existing.Period = fields.period
		existing.Status = fields.status
		existing.Description = input.Description
		existing.UpdatedAt = time.Now().UTC()

		if err := uc.budgetRepo.Update(ctx, existing); err != nil {
			return storageError("failed to update budget", err)
		}
		if err := uc.spending.Apply(ctx, existing); err != nil {
			return storageError("failed to compute budget spending", err)
		}
		budget = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
