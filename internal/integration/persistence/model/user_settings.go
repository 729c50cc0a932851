package model

import (
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// UserSettingsModel represents the user_settings table in the database.
type UserSettingsModel struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	Currency           string    `gorm:"type:varchar(3);not null"`
	Language           string    `gorm:"type:varchar(10);not null;default:'en'"`
	Theme              string    `gorm:"type:varchar(20);not null;default:'light'"`
	Timezone           string    `gorm:"type:varchar(64);not null;default:'UTC'"`
	EmailNotifications bool      `gorm:"not null;default:false"`
	PushNotifications  bool      `gorm:"not null;default:false"`
	BudgetingFrequency string    `gorm:"type:varchar(20);not null;default:'MONTHLY'"`
	DefaultView        string    `gorm:"type:varchar(30);not null;default:'DASHBOARD'"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserSettingsModel.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a UserSettingsModel to a domain UserSettings entity.
func (m *UserSettingsModel) ToEntity() *entity.UserSettings {
	return &entity.UserSettings{
		ID:                 m.ID,
		Currency:           m.Currency,
		Language:           m.Language,
		Theme:              m.Theme,
		Timezone:           m.Timezone,
		EmailNotifications: m.EmailNotifications,
		PushNotifications:  m.PushNotifications,
		BudgetingFrequency: entity.BudgetingFrequency(m.BudgetingFrequency),
		DefaultView:        m.DefaultView,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// UserSettingsFromEntity creates a UserSettingsModel from a domain UserSettings entity.
func UserSettingsFromEntity(s *entity.UserSettings) *UserSettingsModel {
	return &UserSettingsModel{
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
