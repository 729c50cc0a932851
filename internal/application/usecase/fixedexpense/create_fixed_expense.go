package fixedexpense

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateFixedExpenseInput represents the input for fixed expense creation.
type CreateFixedExpenseInput struct {
	FixedExpenseFields
}

// CreateFixedExpenseOutput represents the output of fixed expense creation.
type CreateFixedExpenseOutput struct {
	FixedExpense *entity.FixedExpense
}

// CreateFixedExpenseUseCase handles fixed expense creation logic.
type CreateFixedExpenseUseCase struct {
	expenseRepo adapter.FixedExpenseRepository
	txManager   adapter.TransactionManager
}

// NewCreateFixedExpenseUseCase creates a new CreateFixedExpenseUseCase instance.
func NewCreateFixedExpenseUseCase(
	expenseRepo adapter.FixedExpenseRepository,
	txManager adapter.TransactionManager,
) *CreateFixedExpenseUseCase {
	return &CreateFixedExpenseUseCase{
		expenseRepo: expenseRepo,
		txManager:   txManager,
	}
}

// Execute validates and stores the fixed expense.
func (uc *CreateFixedExpenseUseCase) Execute(ctx context.Context, input CreateFixedExpenseInput) (*CreateFixedExpenseOutput, error) {
	status, err := validateFields(input.FixedExpenseFields)
	if err != nil {
		return nil, err
	}

	expense := entity.NewFixedExpense(input.Name, input.Amount, input.DueDate, input.Category, status)

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.expenseRepo.Create(ctx, expense)
	})
	if err != nil {
		return nil, storageError("failed to create fixed expense", err)
	}

	return &CreateFixedExpenseOutput{
		FixedExpense: expense,
	}, nil
}
