package settings

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateSettingsInput represents the input for settings creation.
type CreateSettingsInput struct {
	SettingsFields
}

// CreateSettingsOutput represents the output of settings creation.
type CreateSettingsOutput struct {
	Settings *entity.UserSettings
}

// CreateSettingsUseCase always inserts a new settings row. The new row
// becomes current because it has the highest id.
type CreateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	txManager    adapter.TransactionManager
}

// NewCreateSettingsUseCase creates a new CreateSettingsUseCase instance.
func NewCreateSettingsUseCase(settingsRepo adapter.SettingsRepository, txManager adapter.TransactionManager) *CreateSettingsUseCase {
	return &CreateSettingsUseCase{
		settingsRepo: settingsRepo,
		txManager:    txManager,
	}
}

// Execute stores the settings.
func (uc *CreateSettingsUseCase) Execute(ctx context.Context, input CreateSettingsInput) (*CreateSettingsOutput, error) {
	settings, err := buildSettings(input.SettingsFields)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.settingsRepo.Create(ctx, settings)
	})
	if err != nil {
		return nil, storageError("failed to create settings", err)
	}

	return &CreateSettingsOutput{
		Settings: settings,
	}, nil
}
