package report

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateReportInput represents the input for report creation.
type CreateReportInput struct {
	ReportFields
}

// CreateReportOutput represents the output of report creation.
type CreateReportOutput struct {
	Report *entity.Report
}

// CreateReportUseCase handles report creation logic.
type CreateReportUseCase struct {
	reportRepo adapter.ReportRepository
	generator  *Generator
	txManager  adapter.TransactionManager
}

// NewCreateReportUseCase creates a new CreateReportUseCase instance.
func NewCreateReportUseCase(
	reportRepo adapter.ReportRepository,
	generator *Generator,
	txManager adapter.TransactionManager,
) *CreateReportUseCase {
	return &CreateReportUseCase{
		reportRepo: reportRepo,
		generator:  generator,
		txManager:  txManager,
	}
}

// Execute validates the report and stores it, generated or pending.
func (uc *CreateReportUseCase) Execute(ctx context.Context, input CreateReportInput) (*CreateReportOutput, error) {
	fields, err := validateFields(input.ReportFields)
	if err != nil {
		return nil, err
	}

	report := entity.NewReport(
		input.Name,
		fields.reportType,
		input.StartDate,
		input.EndDate,
		fields.timeframe,
		fields.categories,
		input.Description,
	)

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if !input.Deferred {
			if err := uc.generator.Snapshot(ctx, report); err != nil {
				return err
			}
		}
		if err := uc.reportRepo.Create(ctx, report); err != nil {
			return storageError("failed to create report", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateReportOutput{
		Report: report,
	}, nil
}
