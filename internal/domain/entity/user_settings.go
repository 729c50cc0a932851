package entity

import (
	"strings"
	"time"
)

// BudgetingFrequency is the preferred cadence for budgeting views.
type BudgetingFrequency string

const (
	BudgetingFrequencyMonthly BudgetingFrequency = "MONTHLY"
	BudgetingFrequencyYearly  BudgetingFrequency = "YEARLY"
)

// Settings defaults applied when a field is left blank.
const (
	DefaultCurrency    = "USD"
	DefaultLanguage    = "en"
	DefaultTheme       = "light"
	DefaultTimezone    = "UTC"
	DefaultDefaultView = "DASHBOARD"
)

// ParseBudgetingFrequency normalizes a raw frequency; empty input defaults to MONTHLY.
func ParseBudgetingFrequency(raw string) (BudgetingFrequency, bool) {
	if strings.TrimSpace(raw) == "" {
		return BudgetingFrequencyMonthly, true
	}
	f := BudgetingFrequency(strings.ToUpper(strings.TrimSpace(raw)))
	switch f {
	case BudgetingFrequencyMonthly, BudgetingFrequencyYearly:
		return f, true
	default:
		return f, false
	}
}

// UserSettings holds the user's preferences.
// Several rows may exist; the one with the highest ID is the current one.
type UserSettings struct {
	ID                 int64
	Currency           string
	Language           string
	Theme              string
	Timezone           string
	EmailNotifications bool
	PushNotifications  bool
	BudgetingFrequency BudgetingFrequency
	DefaultView        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ApplyDefaults fills blank fields with their default values.
func (s *UserSettings) ApplyDefaults() {
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.Timezone == "" {
		s.Timezone = DefaultTimezone
	}
	if s.BudgetingFrequency == "" {
		s.BudgetingFrequency = BudgetingFrequencyMonthly
	}
	if s.DefaultView == "" {
		s.DefaultView = DefaultDefaultView
	}
}
