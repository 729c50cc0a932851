package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/goal"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	c.list(ctx, goal.ListGoalsInput{})
}

// ListActive handles GET /goals/active requests.
func (c *GoalController) ListActive(ctx *gin.Context) {
	c.list(ctx, goal.ListGoalsInput{ActiveOnly: true})
}

func (c *GoalController) list(ctx *gin.Context, input goal.ListGoalsInput) {
	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingGoalFields))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{ID: id})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{GoalFields: fields})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingGoalFields))
	if !ok {
		return
	}
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		ID:         id,
		GoalFields: fields,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingGoalFields))
	if !ok {
		return
	}

	// Execute use case
	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{ID: id}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

func (c *GoalController) bindFields(ctx *gin.Context) (goal.GoalFields, bool) {
	// Parse request body
	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return goal.GoalFields{}, false
	}

	return goal.GoalFields{
		Name:           req.Name,
		TargetAmount:   req.TargetAmount,
		CurrentSavings: req.CurrentSavings,
		IconName:       req.IconName,
		Status:         req.Status,
		Description:    req.Description,
	}, true
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		writeDomainError(ctx, err, string(goalErr.Code), goalErr.Message)
		return
	}
	writeInternalError(ctx, err)
}
