package settings

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// DeleteSettingsOutput represents the output of settings deletion.
type DeleteSettingsOutput struct {
	DeletedID int64
}

// DeleteSettingsUseCase removes the current settings row. An older row,
// if any, becomes current afterwards.
type DeleteSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	txManager    adapter.TransactionManager
}

// NewDeleteSettingsUseCase creates a new DeleteSettingsUseCase instance.
func NewDeleteSettingsUseCase(settingsRepo adapter.SettingsRepository, txManager adapter.TransactionManager) *DeleteSettingsUseCase {
	return &DeleteSettingsUseCase{
		settingsRepo: settingsRepo,
		txManager:    txManager,
	}
}

// Execute deletes the current settings row.
func (uc *DeleteSettingsUseCase) Execute(ctx context.Context) (*DeleteSettingsOutput, error) {
	var deletedID int64
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := uc.settingsRepo.FindLatest(ctx)
		if err != nil {
			return findError(err)
		}
		if err := uc.settingsRepo.Delete(ctx, current.ID); err != nil {
			return findError(err)
		}
		deletedID = current.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteSettingsOutput{
		DeletedID: deletedID,
	}, nil
}
