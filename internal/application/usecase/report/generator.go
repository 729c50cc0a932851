package report

import (
	"context"
	"log/slog"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// Generator computes report snapshots from the ledger.
type Generator struct {
	transactionRepo adapter.TransactionRepository
	renderer        adapter.ReportRenderer
}

// NewGenerator creates a new Generator instance.
func NewGenerator(transactionRepo adapter.TransactionRepository, renderer adapter.ReportRenderer) *Generator {
	return &Generator{
		transactionRepo: transactionRepo,
		renderer:        renderer,
	}
}

// transactions returns the ledger rows a report covers: dated within its
// window and, when categories are set, in one of them.
func (g *Generator) transactions(ctx context.Context, report *entity.Report) ([]*entity.Transaction, error) {
	return g.transactionRepo.FindByDateRange(ctx, report.StartDate, report.EndDate, report.Categories...)
}

// Snapshot computes the total and content of report and marks it GENERATED.
// The report is not saved.
func (g *Generator) Snapshot(ctx context.Context, report *entity.Report) error {
	transactions, err := g.transactions(ctx, report)
	if err != nil {
		return storageError("failed to load report transactions", err)
	}

	totals := entity.SummarizeTransactions(transactions)
	content, err := g.renderer.RenderContent(report, transactions)
	if err != nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeReportRendering,
			"failed to render report content",
			err,
		)
	}

	report.MarkGenerated(report.Type.TotalFor(totals), content)

	slog.Debug("Report snapshot computed",
		"report_id", report.ID,
		"type", report.Type,
		"transactions", totals.Count,
		"total", report.TotalAmount.String(),
	)
	return nil
}
