package transaction

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// ListTransactionsOutput is shared by every ledger listing.
// Transactions are ordered by date then id, ascending.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase lists the whole ledger.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists every transaction.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, storageError("failed to list transactions", err)
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}

// ListTransactionsByTypeInput represents the type filter.
type ListTransactionsByTypeInput struct {
	Type string
}

// ListTransactionsByTypeUseCase lists transactions of one type.
type ListTransactionsByTypeUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsByTypeUseCase creates a new ListTransactionsByTypeUseCase instance.
func NewListTransactionsByTypeUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsByTypeUseCase {
	return &ListTransactionsByTypeUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute validates the type and lists matching transactions.
func (uc *ListTransactionsByTypeUseCase) Execute(ctx context.Context, input ListTransactionsByTypeInput) (*ListTransactionsOutput, error) {
	transactionType, ok := entity.ParseTransactionType(input.Type)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"invalid transaction type",
			domainerror.ErrInvalidTransactionType,
		)
	}

	transactions, err := uc.transactionRepo.FindByType(ctx, transactionType)
	if err != nil {
		return nil, storageError("failed to list transactions by type", err)
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}

// ListTransactionsByCategoryInput represents the category filter.
type ListTransactionsByCategoryInput struct {
	Category string
}

// ListTransactionsByCategoryUseCase lists transactions with an exact category.
type ListTransactionsByCategoryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsByCategoryUseCase creates a new ListTransactionsByCategoryUseCase instance.
func NewListTransactionsByCategoryUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsByCategoryUseCase {
	return &ListTransactionsByCategoryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists matching transactions.
func (uc *ListTransactionsByCategoryUseCase) Execute(ctx context.Context, input ListTransactionsByCategoryInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByCategory(ctx, input.Category)
	if err != nil {
		return nil, storageError("failed to list transactions by category", err)
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}

// ListTransactionsByDateRangeInput represents an inclusive date range.
type ListTransactionsByDateRangeInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// ListTransactionsByDateRangeUseCase lists transactions dated inside a range.
type ListTransactionsByDateRangeUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsByDateRangeUseCase creates a new ListTransactionsByDateRangeUseCase instance.
func NewListTransactionsByDateRangeUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsByDateRangeUseCase {
	return &ListTransactionsByDateRangeUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists transactions dated within [StartDate, EndDate].
// An inverted range yields an empty list rather than an error.
func (uc *ListTransactionsByDateRangeUseCase) Execute(ctx context.Context, input ListTransactionsByDateRangeInput) (*ListTransactionsOutput, error) {
	if entity.NewDateRange(input.StartDate, input.EndDate).IsEmpty() {
		return &ListTransactionsOutput{Transactions: []*entity.Transaction{}}, nil
	}

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, storageError("failed to list transactions by date range", err)
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}
