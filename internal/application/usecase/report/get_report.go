package report

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GetReportInput represents the input for fetching one report.
type GetReportInput struct {
	ID int64
}

// GetReportOutput represents the output of fetching one report.
type GetReportOutput struct {
	Report *entity.Report
}

// GetReportUseCase handles single report lookup.
type GetReportUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(reportRepo adapter.ReportRepository) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute returns the stored report; the snapshot is not recomputed.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	report, err := uc.reportRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, findError(err)
	}

	return &GetReportOutput{
		Report: report,
	}, nil
}
