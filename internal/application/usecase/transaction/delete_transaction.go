package transaction

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID int64
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles permanent transaction removal.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	txManager       adapter.TransactionManager
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	txManager adapter.TransactionManager,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Execute deletes the transaction.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.transactionRepo.Delete(ctx, input.ID); err != nil {
			return findError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
