package dto

import (
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ReportRequest is the body of create and update calls.
// Totals and content are computed by the server; client values are ignored.
type ReportRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Timeframe   string   `json:"timeframe"`
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
	Deferred    bool     `json:"deferred"`
}

// ReportResponse represents a single report in API responses.
type ReportResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Timeframe   string     `json:"timeframe"`
	Categories  []string   `json:"categories"`
	TotalAmount string     `json:"total_amount"`
	Status      string     `json:"status"`
	Content     string     `json:"content"`
	Description string     `json:"description"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ReportListResponse represents the response for listing reports.
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ToReportResponse converts a domain Report entity to a ReportResponse DTO.
func ToReportResponse(r *entity.Report) ReportResponse {
	categories := r.Categories
	if categories == nil {
		categories = []string{}
	}

	return ReportResponse{
		ID:          r.ID,
		Name:        r.Name,
		Type:        string(r.Type),
		StartDate:   formatDate(r.StartDate),
		EndDate:     formatDate(r.EndDate),
		Timeframe:   string(r.Timeframe),
		Categories:  categories,
		TotalAmount: r.TotalAmount.String(),
		Status:      string(r.Status),
		Content:     r.Content,
		Description: r.Description,
		GeneratedAt: r.GeneratedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToReportListResponse converts a list of reports.
func ToReportListResponse(reports []*entity.Report) ReportListResponse {
	items := make([]ReportResponse, len(reports))
	for i, r := range reports {
		items[i] = ToReportResponse(r)
	}
	return ReportListResponse{Reports: items}
}
