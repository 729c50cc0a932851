package fixedexpense

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// UpdateFixedExpenseInput represents the input for a full fixed expense update.
type UpdateFixedExpenseInput struct {
	ID int64
	FixedExpenseFields
}

// UpdateFixedExpenseOutput represents the output of fixed expense update.
type UpdateFixedExpenseOutput struct {
	FixedExpense *entity.FixedExpense
}

// UpdateFixedExpenseUseCase handles fixed expense update logic.
type UpdateFixedExpenseUseCase struct {
	expenseRepo adapter.FixedExpenseRepository
	txManager   adapter.TransactionManager
}

// NewUpdateFixedExpenseUseCase creates a new UpdateFixedExpenseUseCase instance.
func NewUpdateFixedExpenseUseCase(
	expenseRepo adapter.FixedExpenseRepository,
	txManager adapter.TransactionManager,
) *UpdateFixedExpenseUseCase {
	return &UpdateFixedExpenseUseCase{
		expenseRepo: expenseRepo,
		txManager:   txManager,
	}
}

// Execute copies every editable field onto the stored record.
func (uc *UpdateFixedExpenseUseCase) Execute(ctx context.Context, input UpdateFixedExpenseInput) (*UpdateFixedExpenseOutput, error) {
	status, err := validateFields(input.FixedExpenseFields)
	if err != nil {
		return nil, err
	}

	var expense *entity.FixedExpense
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		// Find the existing fixed expense
		existing, err := uc.expenseRepo.FindByID(ctx, input.ID)
		if err != nil {
			return findError(err)
		}

		existing.Name = input.Name
		existing.Amount = input.Amount
		existing.DueDate = input.DueDate
		existing.Category = input.Category
		existing.Status = status
		existing.UpdatedAt = time.Now().UTC()

		if err := uc.expenseRepo.Update(ctx, existing); err != nil {
			return storageError("failed to update fixed expense", err)
		}
		expense = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateFixedExpenseOutput{
		FixedExpense: expense,
	}, nil
}
