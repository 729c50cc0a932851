package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Create inserts a new settings row.
func (r *settingsRepository) Create(ctx context.Context, settings *entity.UserSettings) error {
	settingsModel := model.UserSettingsFromEntity(settings)
	settingsModel.ID = 0
	if err := conn(ctx, r.db).Create(settingsModel).Error; err != nil {
		return domainerror.NewStorageError("create settings", err)
	}
	settings.ID = settingsModel.ID
	return nil
}

// FindLatest returns the settings row with the highest ID.
func (r *settingsRepository) FindLatest(ctx context.Context) (*entity.UserSettings, error) {
	var settingsModel model.UserSettingsModel
	result := conn(ctx, r.db).Order("id DESC").First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingsNotFound
		}
		return nil, domainerror.NewStorageError("find settings", result.Error)
	}
	return settingsModel.ToEntity(), nil
}

// Update saves the settings row.
func (r *settingsRepository) Update(ctx context.Context, settings *entity.UserSettings) error {
	settingsModel := model.UserSettingsFromEntity(settings)
	if err := conn(ctx, r.db).Save(settingsModel).Error; err != nil {
		return domainerror.NewStorageError("update settings", err)
	}
	return nil
}

// Delete removes a settings row permanently.
func (r *settingsRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&model.UserSettingsModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerror.NewStorageError("delete settings", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSettingsNotFound
	}
	return nil
}
