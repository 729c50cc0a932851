package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ReportModel represents the reports table in the database.
type ReportModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(150);not null"`
	Type        string          `gorm:"type:varchar(20);not null;index"`
	StartDate   time.Time       `gorm:"not null;index"`
	EndDate     time.Time       `gorm:"not null"`
	Timeframe   string          `gorm:"type:varchar(20);not null;default:'MONTHLY'"`
	Categories  string          `gorm:"type:text"` // JSON array
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	Content     string          `gorm:"type:text"`
	Description string          `gorm:"type:text"`
	GeneratedAt *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ReportModel.
func (ReportModel) TableName() string {
	return "reports"
}

// ToEntity converts a ReportModel to a domain Report entity.
func (m *ReportModel) ToEntity() *entity.Report {
	return &entity.Report{
		ID:          m.ID,
		Name:        m.Name,
		Type:        entity.ReportType(m.Type),
		StartDate:   entity.NormalizeDate(m.StartDate),
		EndDate:     entity.NormalizeDate(m.EndDate),
		Timeframe:   entity.ReportTimeframe(m.Timeframe),
		Categories:  decodeCategories(m.Categories),
		TotalAmount: m.TotalAmount,
		Status:      entity.ReportStatus(m.Status),
		Content:     m.Content,
		Description: m.Description,
		GeneratedAt: m.GeneratedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ReportFromEntity creates a ReportModel from a domain Report entity.
func ReportFromEntity(r *entity.Report) *ReportModel {
	return &ReportModel{
		ID:          r.ID,
		Name:        r.Name,
		Type:        string(r.Type),
		StartDate:   entity.NormalizeDate(r.StartDate),
		EndDate:     entity.NormalizeDate(r.EndDate),
		Timeframe:   string(r.Timeframe),
		Categories:  encodeCategories(r.Categories),
		TotalAmount: r.TotalAmount,
		Status:      string(r.Status),
		Content:     r.Content,
		Description: r.Description,
		GeneratedAt: r.GeneratedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// encodeCategories stores the category set as a JSON array so names may
// contain any character, commas included.
func encodeCategories(categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	data, _ := json.Marshal(categories)
	return string(data)
}

func decodeCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		// Not an array: treat the column as a single category name.
		return []string{raw}
	}
	if categories == nil {
		return []string{}
	}
	return categories
}
