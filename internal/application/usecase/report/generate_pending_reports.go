package report

import (
	"context"
	"log/slog"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// GeneratePendingReportsInput bounds how many reports one run handles.
type GeneratePendingReportsInput struct {
	Limit int
}

// GeneratePendingReportsOutput summarizes a run.
type GeneratePendingReportsOutput struct {
	Generated int
	Failed    int
}

// GeneratePendingReportsUseCase snapshots reports left PENDING.
// A report that fails stays PENDING and moves behind the other pending
// reports, so repeated failures cannot starve newer ones.
type GeneratePendingReportsUseCase struct {
	reportRepo adapter.ReportRepository
	generator  *Generator
	txManager  adapter.TransactionManager
}

// NewGeneratePendingReportsUseCase creates a new GeneratePendingReportsUseCase instance.
func NewGeneratePendingReportsUseCase(
	reportRepo adapter.ReportRepository,
	generator *Generator,
	txManager adapter.TransactionManager,
) *GeneratePendingReportsUseCase {
	return &GeneratePendingReportsUseCase{
		reportRepo: reportRepo,
		generator:  generator,
		txManager:  txManager,
	}
}

// Execute generates up to Limit pending reports, least recently attempted first.
func (uc *GeneratePendingReportsUseCase) Execute(ctx context.Context, input GeneratePendingReportsInput) (*GeneratePendingReportsOutput, error) {
	pending, err := uc.reportRepo.FindPending(ctx, input.Limit)
	if err != nil {
		return nil, storageError("failed to list pending reports", err)
	}

	output := &GeneratePendingReportsOutput{}
	for _, report := range pending {
		if ctx.Err() != nil {
			break
		}

		err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := uc.generator.Snapshot(ctx, report); err != nil {
				return err
			}
			if err := uc.reportRepo.Update(ctx, report); err != nil {
				return storageError("failed to save generated report", err)
			}
			return nil
		})
		if err != nil {
			slog.Error("Failed to generate report",
				"report_id", report.ID,
				"error", err,
			)
			if err := uc.reportRepo.MarkAttempted(ctx, report.ID); err != nil {
				slog.Warn("Failed to requeue report",
					"report_id", report.ID,
					"error", err,
				)
			}
			output.Failed++
			continue
		}

		slog.Info("Report generated",
			"report_id", report.ID,
			"total", report.TotalAmount.String(),
		)
		output.Generated++
	}

	return output, nil
}
