package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/budget"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase *budget.CreateBudgetUseCase
	getUseCase    *budget.GetBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	c.list(ctx, budget.ListBudgetsFilter{})
}

// ListActive handles GET /budgets/active requests.
func (c *BudgetController) ListActive(ctx *gin.Context) {
	c.list(ctx, budget.ListBudgetsFilter{Status: string(entity.StatusActive)})
}

// ListByStatus handles GET /budgets/status/:status requests.
func (c *BudgetController) ListByStatus(ctx *gin.Context) {
	c.list(ctx, budget.ListBudgetsFilter{Status: ctx.Param("status")})
}

// ListByCategory handles GET /budgets/category/:category requests.
func (c *BudgetController) ListByCategory(ctx *gin.Context) {
	c.list(ctx, budget.ListBudgetsFilter{Category: ctx.Param("category")})
}

// ListByDateRange handles GET /budgets/range?startDate=&endDate= requests.
// It matches budgets whose start date falls inside the range.
func (c *BudgetController) ListByDateRange(ctx *gin.Context) {
	start, end, ok := bindDateRange(ctx, string(domainerror.ErrCodeInvalidBudgetWindow))
	if !ok {
		return
	}
	c.list(ctx, budget.ListBudgetsFilter{StartFrom: &start, StartTo: &end})
}

func (c *BudgetController) list(ctx *gin.Context, filter budget.ListBudgetsFilter) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{Filter: filter})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingBudgetFields))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{ID: id})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{BudgetFields: fields})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingBudgetFields))
	if !ok {
		return
	}
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		ID:           id,
		BudgetFields: fields,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingBudgetFields))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{ID: id}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *BudgetController) bindFields(ctx *gin.Context) (budget.BudgetFields, bool) {
	// Parse request body
	var req dto.BudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return budget.BudgetFields{}, false
	}

	start, end, err := dto.DateRangeQuery{StartDate: req.StartDate, EndDate: req.EndDate}.Parse()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBudgetWindow),
		})
		return budget.BudgetFields{}, false
	}

	return budget.BudgetFields{
		Category:    req.Category,
		Amount:      req.Amount,
		StartDate:   start,
		EndDate:     end,
		Period:      req.Period,
		Status:      req.Status,
		Description: req.Description,
	}, true
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		writeDomainError(ctx, err, string(budgetErr.Code), budgetErr.Message)
		return
	}
	writeInternalError(ctx, err)
}
