package adapter

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ReportRepository defines the interface for report persistence operations.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	FindByID(ctx context.Context, id int64) (*entity.Report, error)
	FindAll(ctx context.Context) ([]*entity.Report, error)
	FindByType(ctx context.Context, reportType entity.ReportType) ([]*entity.Report, error)

	// FindByStatus retrieves reports with the given status, oldest first.
	// A limit of zero or less means no limit.
	FindByStatus(ctx context.Context, status entity.ReportStatus, limit int) ([]*entity.Report, error)

	// FindPending retrieves up to limit PENDING reports, least recently
	// attempted first.
	FindPending(ctx context.Context, limit int) ([]*entity.Report, error)

	// MarkAttempted bumps the updated time of a PENDING report so a failed
	// report queues behind the others.
	MarkAttempted(ctx context.Context, id int64) error

	// FindByStartDateRange retrieves reports whose start date is within [start, end].
	FindByStartDateRange(ctx context.Context, start, end time.Time) ([]*entity.Report, error)

	Update(ctx context.Context, report *entity.Report) error
	Delete(ctx context.Context, id int64) error
}
