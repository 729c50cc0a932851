package adapter

import (
	"context"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for user settings persistence operations.
type SettingsRepository interface {
	// Create always inserts a new row.
	Create(ctx context.Context, settings *entity.UserSettings) error

	// FindLatest returns the row with the highest ID.
	FindLatest(ctx context.Context) (*entity.UserSettings, error)

	Update(ctx context.Context, settings *entity.UserSettings) error
	Delete(ctx context.Context, id int64) error
}
