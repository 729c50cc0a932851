package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// SummarizeTransactionsInput optionally bounds the summary to a date range.
// Both bounds must be set for the range to apply.
type SummarizeTransactionsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// SummarizeTransactionsOutput represents the ledger totals.
type SummarizeTransactionsOutput struct {
	Totals *entity.TransactionTotals
}

// SummarizeTransactionsUseCase computes income, expense and net totals.
type SummarizeTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSummarizeTransactionsUseCase creates a new SummarizeTransactionsUseCase instance.
func NewSummarizeTransactionsUseCase(transactionRepo adapter.TransactionRepository) *SummarizeTransactionsUseCase {
	return &SummarizeTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the totals.
func (uc *SummarizeTransactionsUseCase) Execute(ctx context.Context, input SummarizeTransactionsInput) (*SummarizeTransactionsOutput, error) {
	var (
		transactions []*entity.Transaction
		err          error
	)
	if input.StartDate != nil && input.EndDate != nil {
		transactions, err = uc.transactionRepo.FindByDateRange(ctx, *input.StartDate, *input.EndDate)
	} else {
		transactions, err = uc.transactionRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, storageError("failed to summarize transactions", err)
	}

	totals := entity.SummarizeTransactions(transactions)
	slog.Debug("Ledger summarized",
		"transactions", totals.Count,
		"income", totals.IncomeTotal.String(),
		"expense", totals.ExpenseTotal.String(),
	)

	return &SummarizeTransactionsOutput{
		Totals: totals,
	}, nil
}
