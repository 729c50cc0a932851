package adapter

import (
	"context"
	"io"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ReportRenderer turns ledger rows into report artifacts.
type ReportRenderer interface {
	// RenderContent builds the stored snapshot document for a report.
	RenderContent(report *entity.Report, transactions []*entity.Transaction) (string, error)

	// RenderWorkbook writes an XLSX workbook of a generated report's
	// snapshot to w.
	RenderWorkbook(ctx context.Context, w io.Writer, report *entity.Report) error
}
