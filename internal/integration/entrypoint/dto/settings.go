package dto

import (
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// SettingsRequest is the body of create and update calls.
// An id in the body is ignored; the current row is always the target.
type SettingsRequest struct {
	Currency           string `json:"currency"`
	Language           string `json:"language"`
	Theme              string `json:"theme"`
	Timezone           string `json:"timezone"`
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	BudgetingFrequency string `json:"budgeting_frequency"`
	DefaultView        string `json:"default_view"`
}

// SettingsResponse represents the user settings in API responses.
type SettingsResponse struct {
	ID                 int64     `json:"id"`
	Currency           string    `json:"currency"`
	Language           string    `json:"language"`
	Theme              string    `json:"theme"`
	Timezone           string    `json:"timezone"`
	EmailNotifications bool      `json:"email_notifications"`
	PushNotifications  bool      `json:"push_notifications"`
	BudgetingFrequency string    `json:"budgeting_frequency"`
	DefaultView        string    `json:"default_view"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToSettingsResponse converts a domain UserSettings entity to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		ID:                 s.ID,
		Currency:           s.Currency,
		Language:           s.Language,
		Theme:              s.Theme,
		Timezone:           s.Timezone,
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		BudgetingFrequency: string(s.BudgetingFrequency),
		DefaultView:        s.DefaultView,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
