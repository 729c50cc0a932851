package report

import (
	"context"
	"io"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// ExportReportInput represents the input for exporting a report.
type ExportReportInput struct {
	ID     int64
	Writer io.Writer
}

// ExportReportOutput describes the written workbook.
type ExportReportOutput struct {
	Report   *entity.Report
	Filename string
}

// ExportReportUseCase writes a generated report as an XLSX workbook.
// Every sheet comes from the stored snapshot, so an export always agrees
// with the report's total even after the ledger changes.
type ExportReportUseCase struct {
	reportRepo adapter.ReportRepository
	renderer   adapter.ReportRenderer
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(reportRepo adapter.ReportRepository, renderer adapter.ReportRenderer) *ExportReportUseCase {
	return &ExportReportUseCase{
		reportRepo: reportRepo,
		renderer:   renderer,
	}
}

// Execute renders the workbook into input.Writer.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	report, err := uc.reportRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, findError(err)
	}

	if report.Status != entity.ReportStatusGenerated {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportNotGenerated,
			"report is still pending",
			domainerror.ErrReportNotGenerated,
		)
	}

	if err := uc.renderer.RenderWorkbook(ctx, input.Writer, report); err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportRendering,
			"failed to render report workbook",
			err,
		)
	}

	return &ExportReportOutput{
		Report:   report,
		Filename: exportFilename(report),
	}, nil
}

func exportFilename(report *entity.Report) string {
	return "report-" + report.StartDate.Format("20060102") + "-" + report.EndDate.Format("20060102") + ".xlsx"
}
