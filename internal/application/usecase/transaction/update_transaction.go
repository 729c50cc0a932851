package transaction

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for a full transaction update.
type UpdateTransactionInput struct {
	ID int64
	TransactionFields
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	txManager       adapter.TransactionManager
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	txManager adapter.TransactionManager,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Execute replaces every mutable field of an existing transaction.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transactionType, err := validateFields(input.TransactionFields)
	if err != nil {
		return nil, err
	}

	var transaction *entity.Transaction
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		// Find the existing transaction
		existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
		if err != nil {
			return findError(err)
		}

		existing.Type = transactionType
		existing.Amount = input.Amount
		existing.Category = input.Category
		existing.Description = input.Description
		existing.Date = entity.NormalizeDate(input.Date)
		existing.UpdatedAt = time.Now().UTC()

		if err := uc.transactionRepo.Update(ctx, existing); err != nil {
			return storageError("failed to update transaction", err)
		}
		transaction = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
