package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/settings"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles the settings singleton.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	createUseCase *settings.CreateSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
	deleteUseCase *settings.DeleteSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	createUseCase *settings.CreateSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	deleteUseCase *settings.DeleteSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Create handles POST /settings requests.
// Every call inserts a new row, which becomes the current one.
func (c *SettingsController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), settings.CreateSettingsInput{SettingsFields: fields})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToSettingsResponse(output.Settings))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{SettingsFields: fields})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToSettingsResponse(output.Settings))
}

// Delete handles DELETE /settings requests.
func (c *SettingsController) Delete(ctx *gin.Context) {
	if _, err := c.deleteUseCase.Execute(ctx.Request.Context()); err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *SettingsController) bindFields(ctx *gin.Context) (settings.SettingsFields, bool) {
	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSettingsFields),
		})
		return settings.SettingsFields{}, false
	}

	return settings.SettingsFields{
		Currency:           req.Currency,
		Language:           req.Language,
		Theme:              req.Theme,
		Timezone:           req.Timezone,
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		BudgetingFrequency: req.BudgetingFrequency,
		DefaultView:        req.DefaultView,
	}, true
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		writeDomainError(ctx, err, string(settingsErr.Code), settingsErr.Message)
		return
	}
	writeInternalError(ctx, err)
}
