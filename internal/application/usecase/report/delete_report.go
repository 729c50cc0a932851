package report

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// DeleteReportInput represents the input for report deletion.
type DeleteReportInput struct {
	ID int64
}

// DeleteReportOutput represents the output of report deletion.
type DeleteReportOutput struct {
	Success bool
}

// DeleteReportUseCase handles permanent report removal.
type DeleteReportUseCase struct {
	reportRepo adapter.ReportRepository
	txManager  adapter.TransactionManager
}

// NewDeleteReportUseCase creates a new DeleteReportUseCase instance.
func NewDeleteReportUseCase(reportRepo adapter.ReportRepository, txManager adapter.TransactionManager) *DeleteReportUseCase {
	return &DeleteReportUseCase{
		reportRepo: reportRepo,
		txManager:  txManager,
	}
}

// Execute deletes the report.
func (uc *DeleteReportUseCase) Execute(ctx context.Context, input DeleteReportInput) (*DeleteReportOutput, error) {
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.reportRepo.Delete(ctx, input.ID); err != nil {
			return findError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteReportOutput{
		Success: true,
	}, nil
}
