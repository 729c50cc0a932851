// Package settings contains user preference use cases.
package settings

import (
	"errors"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// SettingsFields holds the caller-editable preferences. Blank strings take
// their defaults.
type SettingsFields struct {
	Currency           string
	Language           string
	Theme              string
	Timezone           string
	EmailNotifications bool
	PushNotifications  bool
	BudgetingFrequency string
	DefaultView        string
}

// buildSettings validates the fields and returns normalized settings.
func buildSettings(f SettingsFields) (*entity.UserSettings, error) {
	frequency, ok := entity.ParseBudgetingFrequency(f.BudgetingFrequency)
	if !ok {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidBudgetingFrequency,
			"invalid budgeting frequency",
			domainerror.ErrInvalidBudgetingFrequency,
		)
	}

	s := &entity.UserSettings{
		Currency:           strings.ToUpper(strings.TrimSpace(f.Currency)),
		Language:           strings.TrimSpace(f.Language),
		Theme:              strings.TrimSpace(f.Theme),
		Timezone:           strings.TrimSpace(f.Timezone),
		EmailNotifications: f.EmailNotifications,
		PushNotifications:  f.PushNotifications,
		BudgetingFrequency: frequency,
		DefaultView:        strings.ToUpper(strings.TrimSpace(f.DefaultView)),
	}
	s.ApplyDefaults()

	if !isCurrencyCode(s.Currency) {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidCurrency,
			"invalid currency",
			domainerror.ErrInvalidCurrency,
		)
	}

	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidTimezone,
			"invalid timezone",
			domainerror.ErrInvalidTimezone,
		)
	}

	return s, nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// findError converts a repository lookup failure into a coded error.
func findError(err error) error {
	if errors.Is(err, domainerror.ErrSettingsNotFound) {
		return domainerror.NewSettingsError(
			domainerror.ErrCodeSettingsNotFound,
			"settings not found",
			domainerror.ErrSettingsNotFound,
		)
	}
	return storageError("failed to find settings", err)
}

func storageError(message string, err error) error {
	return domainerror.NewSettingsError(
		domainerror.ErrCodeSettingsStorage,
		message,
		err,
	)
}
