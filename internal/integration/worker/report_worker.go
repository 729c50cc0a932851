// Package worker runs background jobs.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/budget-ledger/backend/internal/application/usecase/report"
)

// PendingReportGenerator generates reports left PENDING.
type PendingReportGenerator interface {
	Execute(ctx context.Context, input report.GeneratePendingReportsInput) (*report.GeneratePendingReportsOutput, error)
}

// ReportWorker polls for pending reports and generates them.
type ReportWorker struct {
	generator    PendingReportGenerator
	pollInterval time.Duration
	batchSize    int
}

// ReportWorkerConfig holds configuration for the report worker.
type ReportWorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultReportWorkerConfig returns the default worker configuration.
func DefaultReportWorkerConfig() ReportWorkerConfig {
	return ReportWorkerConfig{
		PollInterval: 10 * time.Second,
		BatchSize:    10,
	}
}

// NewReportWorker creates a new report worker.
func NewReportWorker(generator PendingReportGenerator, config ReportWorkerConfig) *ReportWorker {
	defaults := DefaultReportWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}

	return &ReportWorker{
		generator:    generator,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *ReportWorker) Start(ctx context.Context) {
	slog.Info("Report worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Report worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch generates one batch of pending reports.
func (w *ReportWorker) processBatch(ctx context.Context) {
	output, err := w.generator.Execute(ctx, report.GeneratePendingReportsInput{Limit: w.batchSize})
	if err != nil {
		slog.Error("Failed to process pending reports", "error", err)
		return
	}

	if output.Generated == 0 && output.Failed == 0 {
		return
	}

	if output.Failed > 0 {
		slog.Warn("Report batch finished with failures",
			"generated", output.Generated,
			"failed", output.Failed,
		)
		return
	}

	slog.Debug("Report batch finished", "generated", output.Generated)
}

// ProcessNow generates one batch immediately (useful for testing).
func (w *ReportWorker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
