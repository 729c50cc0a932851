package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// reportRenderer implements the adapter.ReportRenderer interface.
type reportRenderer struct{}

// NewReportRenderer creates a new report renderer instance.
func NewReportRenderer() adapter.ReportRenderer {
	return &reportRenderer{}
}

// RenderContent builds and encodes the snapshot document.
func (r *reportRenderer) RenderContent(report *entity.Report, transactions []*entity.Transaction) (string, error) {
	data, err := json.Marshal(BuildContent(report.Timeframe, transactions))
	if err != nil {
		return "", fmt.Errorf("failed to encode report content: %w", err)
	}
	return string(data), nil
}

// RenderWorkbook writes the XLSX export of the stored snapshot only; the
// live ledger is never consulted.
func (r *reportRenderer) RenderWorkbook(ctx context.Context, w io.Writer, report *entity.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := ParseContent(report.Content)
	if err != nil {
		return err
	}

	return writeWorkbook(w, report, content)
}
