package transaction

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	TransactionFields
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	txManager       adapter.TransactionManager
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	txManager adapter.TransactionManager,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Execute validates and records a new ledger entry.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transactionType, err := validateFields(input.TransactionFields)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		transactionType,
		input.Amount,
		input.Category,
		input.Description,
		input.Date,
	)

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.transactionRepo.Create(ctx, transaction)
	})
	if err != nil {
		return nil, storageError("failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
