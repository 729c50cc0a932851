package controller

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/report"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController handles report endpoints.
type ReportController struct {
	createUseCase *report.CreateReportUseCase
	getUseCase    *report.GetReportUseCase
	listUseCase   *report.ListReportsUseCase
	updateUseCase *report.UpdateReportUseCase
	deleteUseCase *report.DeleteReportUseCase
	exportUseCase *report.ExportReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	createUseCase *report.CreateReportUseCase,
	getUseCase *report.GetReportUseCase,
	listUseCase *report.ListReportsUseCase,
	updateUseCase *report.UpdateReportUseCase,
	deleteUseCase *report.DeleteReportUseCase,
	exportUseCase *report.ExportReportUseCase,
) *ReportController {
	return &ReportController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		exportUseCase: exportUseCase,
	}
}

// List handles GET /reports requests.
func (c *ReportController) List(ctx *gin.Context) {
	c.list(ctx, report.ListReportsFilter{})
}

// ListByType handles GET /reports/type/:type requests.
func (c *ReportController) ListByType(ctx *gin.Context) {
	c.list(ctx, report.ListReportsFilter{Type: ctx.Param("type")})
}

// ListByStatus handles GET /reports/status/:status requests.
func (c *ReportController) ListByStatus(ctx *gin.Context) {
	c.list(ctx, report.ListReportsFilter{Status: ctx.Param("status")})
}

// ListByDateRange handles GET /reports/range?startDate=&endDate= requests.
func (c *ReportController) ListByDateRange(ctx *gin.Context) {
	start, end, ok := bindDateRange(ctx, string(domainerror.ErrCodeInvalidReportWindow))
	if !ok {
		return
	}
	c.list(ctx, report.ListReportsFilter{StartFrom: &start, StartTo: &end})
}

func (c *ReportController) list(ctx *gin.Context, filter report.ListReportsFilter) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), report.ListReportsInput{Filter: filter})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToReportListResponse(output.Reports))
}

// Get handles GET /reports/:id requests.
func (c *ReportController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingReportFields))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), report.GetReportInput{ID: id})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// Export handles GET /reports/:id/export requests.
// The workbook is rendered in memory so a failure can still produce a JSON error.
func (c *ReportController) Export(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingReportFields))
	if !ok {
		return
	}

	var buf bytes.Buffer
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportReportInput{
		ID:     id,
		Writer: &buf,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Create handles POST /reports requests.
// A deferred report is stored as PENDING and answered with 202.
func (c *ReportController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), report.CreateReportInput{ReportFields: fields})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	status := http.StatusCreated
	if output.Report.Status == entity.ReportStatusPending {
		status = http.StatusAccepted
	}
	ctx.JSON(status, dto.ToReportResponse(output.Report))
}

// Update handles PUT /reports/:id requests.
func (c *ReportController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingReportFields))
	if !ok {
		return
	}
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), report.UpdateReportInput{
		ID:           id,
		ReportFields: fields,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// Delete handles DELETE /reports/:id requests.
func (c *ReportController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingReportFields))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), report.DeleteReportInput{ID: id}); err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ReportController) bindFields(ctx *gin.Context) (report.ReportFields, bool) {
	// Parse request body
	var req dto.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingReportFields),
		})
		return report.ReportFields{}, false
	}

	start, end, err := dto.DateRangeQuery{StartDate: req.StartDate, EndDate: req.EndDate}.Parse()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidReportWindow),
		})
		return report.ReportFields{}, false
	}

	return report.ReportFields{
		Name:        req.Name,
		Type:        req.Type,
		StartDate:   start,
		EndDate:     end,
		Timeframe:   req.Timeframe,
		Categories:  req.Categories,
		Description: req.Description,
		Deferred:    req.Deferred,
	}, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		writeDomainError(ctx, err, string(reportErr.Code), reportErr.Message)
		return
	}
	writeInternalError(ctx, err)
}
