package report

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ListReportsFilter selects which reports to list. At most one criterion
// is applied, checked in field order; a zero filter lists everything.
type ListReportsFilter struct {
	Type      string
	Status    string
	StartFrom *time.Time
	StartTo   *time.Time
}

// ListReportsInput represents the input for listing reports.
type ListReportsInput struct {
	Filter ListReportsFilter
}

// ListReportsOutput represents the output of listing reports.
type ListReportsOutput struct {
	Reports []*entity.Report
}

// ListReportsUseCase lists stored reports.
type ListReportsUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(reportRepo adapter.ReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
	}
}

// Execute lists the reports matching the filter.
func (uc *ListReportsUseCase) Execute(ctx context.Context, input ListReportsInput) (*ListReportsOutput, error) {
	filter := input.Filter

	var (
		reports []*entity.Report
		err     error
	)
	switch {
	case filter.Type != "":
		reportType, ok := entity.ParseReportType(filter.Type)
		if !ok {
			return nil, invalidTypeError()
		}
		reports, err = uc.reportRepo.FindByType(ctx, reportType)
	case filter.Status != "":
		status, ok := entity.ParseReportStatus(filter.Status)
		if !ok {
			return nil, invalidStatusError()
		}
		reports, err = uc.reportRepo.FindByStatus(ctx, status, 0)
	case filter.StartFrom != nil && filter.StartTo != nil:
		reports, err = uc.reportRepo.FindByStartDateRange(ctx, *filter.StartFrom, *filter.StartTo)
	default:
		reports, err = uc.reportRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, storageError("failed to list reports", err)
	}

	return &ListReportsOutput{
		Reports: reports,
	}, nil
}
