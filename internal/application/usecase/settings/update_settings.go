package settings

import (
	"context"
	"errors"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for settings update.
type UpdateSettingsInput struct {
	SettingsFields
}

// UpdateSettingsOutput represents the output of settings update.
type UpdateSettingsOutput struct {
	Settings *entity.UserSettings
	Created  bool
}

// UpdateSettingsUseCase overwrites the current settings row, or inserts one
// when none exists.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	txManager    adapter.TransactionManager
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository, txManager adapter.TransactionManager) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		txManager:    txManager,
	}
}

// Execute performs the upsert.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	settings, err := buildSettings(input.SettingsFields)
	if err != nil {
		return nil, err
	}

	created := false
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()
		settings.UpdatedAt = now

		current, err := uc.settingsRepo.FindLatest(ctx)
		if errors.Is(err, domainerror.ErrSettingsNotFound) {
			settings.CreatedAt = now
			created = true
			if err := uc.settingsRepo.Create(ctx, settings); err != nil {
				return storageError("failed to create settings", err)
			}
			return nil
		}
		if err != nil {
			return findError(err)
		}

		// Any id sent by the caller is ignored in favour of the current row.
		settings.ID = current.ID
		settings.CreatedAt = current.CreatedAt
		if err := uc.settingsRepo.Update(ctx, settings); err != nil {
			return storageError("failed to update settings", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateSettingsOutput{
		Settings: settings,
		Created:  created,
	}, nil
}
