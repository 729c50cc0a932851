// Package main runs the background report generator on its own.
// Use it with REPORT_WORKER_ENABLED=false on the API instances.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/infra/db"
	"github.com/budget-ledger/backend/internal/infra/dependency"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	})))

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dependency.NewReportWorker(cfg, database.DB()).Start(ctx)

	slog.Info("Report worker exited")
}
