package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/fixedexpense"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// FixedExpenseController handles fixed expense endpoints.
type FixedExpenseController struct {
	createUseCase     *fixedexpense.CreateFixedExpenseUseCase
	getUseCase        *fixedexpense.GetFixedExpenseUseCase
	listUseCase       *fixedexpense.ListFixedExpensesUseCase
	updateUseCase     *fixedexpense.UpdateFixedExpenseUseCase
	deleteUseCase     *fixedexpense.DeleteFixedExpenseUseCase
	commitmentUseCase *fixedexpense.MonthlyCommitmentUseCase
}

// NewFixedExpenseController creates a new fixed expense controller instance.
func NewFixedExpenseController(
	createUseCase *fixedexpense.CreateFixedExpenseUseCase,
	getUseCase *fixedexpense.GetFixedExpenseUseCase,
	listUseCase *fixedexpense.ListFixedExpensesUseCase,
	updateUseCase *fixedexpense.UpdateFixedExpenseUseCase,
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase,
	commitmentUseCase *fixedexpense.MonthlyCommitmentUseCase,
) *FixedExpenseController {
	return &FixedExpenseController{
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		commitmentUseCase: commitmentUseCase,
	}
}

// List handles GET /fixed-expenses requests.
func (c *FixedExpenseController) List(ctx *gin.Context) {
	c.list(ctx, fixedexpense.ListFixedExpensesInput{})
}

// ListActive handles GET /fixed-expenses/active requests.
func (c *FixedExpenseController) ListActive(ctx *gin.Context) {
	c.list(ctx, fixedexpense.ListFixedExpensesInput{ActiveOnly: true})
}

// ListByCategory handles GET /fixed-expenses/category/:category requests.
func (c *FixedExpenseController) ListByCategory(ctx *gin.Context) {
	c.list(ctx, fixedexpense.ListFixedExpensesInput{Category: ctx.Param("category")})
}

func (c *FixedExpenseController) list(ctx *gin.Context, input fixedexpense.ListFixedExpensesInput) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFixedExpenseListResponse(output.FixedExpenses))
}

// Commitment handles GET /fixed-expenses/commitment requests.
func (c *FixedExpenseController) Commitment(ctx *gin.Context) {
	output, err := c.commitmentUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MonthlyCommitmentResponse{
		Total:       output.Total.String(),
		ActiveCount: output.ActiveCount,
	})
}

// Get handles GET /fixed-expenses/:id requests.
func (c *FixedExpenseController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingFixedExpenseFields))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), fixedexpense.GetFixedExpenseInput{ID: id})
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Create handles POST /fixed-expenses requests.
func (c *FixedExpenseController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fixedexpense.CreateFixedExpenseInput{
		FixedExpenseFields: fields,
	})
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Update handles PUT /fixed-expenses/:id requests.
func (c *FixedExpenseController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingFixedExpenseFields))
	if !ok {
		return
	}
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), fixedexpense.UpdateFixedExpenseInput{
		ID:                 id,
		FixedExpenseFields: fields,
	})
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Delete handles DELETE /fixed-expenses/:id requests.
// The expense is retired, not removed.
func (c *FixedExpenseController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeMissingFixedExpenseFields))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), fixedexpense.DeleteFixedExpenseInput{ID: id}); err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *FixedExpenseController) bindFields(ctx *gin.Context) (fixedexpense.FixedExpenseFields, bool) {
	var req dto.FixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFixedExpenseFields),
		})
		return fixedexpense.FixedExpenseFields{}, false
	}

	return fixedexpense.FixedExpenseFields{
		Name:     req.Name,
		Amount:   req.Amount,
		DueDate:  req.DueDate,
		Category: req.Category,
		Status:   req.Status,
	}, true
}

// handleFixedExpenseError handles fixed expense errors and returns appropriate HTTP responses.
func (c *FixedExpenseController) handleFixedExpenseError(ctx *gin.Context, err error) {
	var fxErr *domainerror.FixedExpenseError
	if errors.As(err, &fxErr) {
		writeDomainError(ctx, err, string(fxErr.Code), fxErr.Message)
		return
	}
	writeInternalError(ctx, err)
}
