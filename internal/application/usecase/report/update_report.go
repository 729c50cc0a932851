package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// UpdateReportInput represents the input for a full report update.
type UpdateReportInput struct {
	ID int64
	ReportFields
}

// UpdateReportOutput represents the output of report update.
type UpdateReportOutput struct {
	Report *entity.Report
}

// UpdateReportUseCase replaces a report definition and refreshes its snapshot.
type UpdateReportUseCase struct {
	reportRepo adapter.ReportRepository
	generator  *Generator
	txManager  adapter.TransactionManager
}

// NewUpdateReportUseCase creates a new UpdateReportUseCase instance.
func NewUpdateReportUseCase(
	reportRepo adapter.ReportRepository,
	generator *Generator,
	txManager adapter.TransactionManager,
) *UpdateReportUseCase {
	return &UpdateReportUseCase{
		reportRepo: reportRepo,
		generator:  generator,
		txManager:  txManager,
	}
}

// Execute performs the report update.
func (uc *UpdateReportUseCase) Execute(ctx context.Context, input UpdateReportInput) (*UpdateReportOutput, error) {
	fields, err := validateFields(input.ReportFields)
	if err != nil {
		return nil, err
	}

	var report *entity.Report
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		// Find the existing report
		existing, err := uc.reportRepo.FindByID(ctx, input.ID)
		if err != nil {
			return findError(err)
		}

		existing.Name = input.Name
		existing.Type = fields.reportType
		existing.StartDate = entity.NormalizeDate(input.StartDate)
		existing.EndDate = entity.NormalizeDate(input.EndDate)
		existing.Timeframe = fields.timeframe
		existing.Categories = fields.categories
		existing.Description = input.Description
		existing.UpdatedAt = time.Now().UTC()

		if input.Deferred {
			existing.Status = entity.ReportStatusPending
			existing.TotalAmount = decimal.Zero
			existing.Content = ""
			existing.GeneratedAt = nil
		} else if err := uc.generator.Snapshot(ctx, existing); err != nil {
			return err
		}

		if err := uc.reportRepo.Update(ctx, existing); err != nil {
			return storageError("failed to update report", err)
		}
		report = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateReportOutput{
		Report: report,
	}, nil
}
