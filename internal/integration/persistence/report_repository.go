package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create creates a new report in the database.
func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportModel := model.ReportFromEntity(report)
	if err := conn(ctx, r.db).Create(reportModel).Error; err != nil {
		return domainerror.NewStorageError("create report", err)
	}
	report.ID = reportModel.ID
	return nil
}

// FindByID retrieves a report by its ID.
func (r *reportRepository) FindByID(ctx context.Context, id int64) (*entity.Report, error) {
	var reportModel model.ReportModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReportNotFound
		}
		return nil, domainerror.NewStorageError("find report", result.Error)
	}
	return reportModel.ToEntity(), nil
}

// FindAll retrieves every report.
func (r *reportRepository) FindAll(ctx context.Context) ([]*entity.Report, error) {
	return r.find("list reports", conn(ctx, r.db))
}

// FindByType retrieves reports of the given type.
func (r *reportRepository) FindByType(ctx context.Context, reportType entity.ReportType) ([]*entity.Report, error) {
	return r.find("list reports by type", conn(ctx, r.db).Where("type = ?", string(reportType)))
}

// FindByStatus retrieves reports with the given status, oldest first.
func (r *reportRepository) FindByStatus(ctx context.Context, status entity.ReportStatus, limit int) ([]*entity.Report, error) {
	query := conn(ctx, r.db).Where("status = ?", string(status))
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.find("list reports by status", query)
}

// FindPending retrieves PENDING reports, least recently attempted first.
func (r *reportRepository) FindPending(ctx context.Context, limit int) ([]*entity.Report, error) {
	query := conn(ctx, r.db).
		Where("status = ?", string(entity.ReportStatusPending)).
		Order("updated_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.find("list pending reports", query)
}

// MarkAttempted bumps updated_at of a PENDING report.
func (r *reportRepository) MarkAttempted(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Model(&model.ReportModel{}).
		Where("id = ? AND status = ?", id, string(entity.ReportStatusPending)).
		Update("updated_at", time.Now().UTC())
	if result.Error != nil {
		return domainerror.NewStorageError("mark report attempted", result.Error)
	}
	return nil
}

// FindByStartDateRange retrieves reports whose start date is within [start, end].
func (r *reportRepository) FindByStartDateRange(ctx context.Context, start, end time.Time) ([]*entity.Report, error) {
	window := entity.NewDateRange(start, end)
	if window.IsEmpty() {
		return []*entity.Report{}, nil
	}
	return r.find("list reports by start date",
		conn(ctx, r.db).Where("start_date >= ? AND start_date <= ?", window.Start, window.End))
}

// Update updates an existing report in the database.
func (r *reportRepository) Update(ctx context.Context, report *entity.Report) error {
	reportModel := model.ReportFromEntity(report)
	if err := conn(ctx, r.db).Save(reportModel).Error; err != nil {
		return domainerror.NewStorageError("update report", err)
	}
	return nil
}

// Delete removes a report permanently.
func (r *reportRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&model.ReportModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerror.NewStorageError("delete report", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrReportNotFound
	}
	return nil
}

func (r *reportRepository) find(op string, query *gorm.DB) ([]*entity.Report, error) {
	var reportModels []model.ReportModel
	if err := query.Order("id ASC").Find(&reportModels).Error; err != nil {
		return nil, domainerror.NewStorageError(op, err)
	}

	reports := make([]*entity.Report, len(reportModels))
	for i := range reportModels {
		reports[i] = reportModels[i].ToEntity()
	}
	return reports, nil
}
