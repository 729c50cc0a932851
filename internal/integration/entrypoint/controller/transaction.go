package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/transaction"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles ledger endpoints.
type TransactionController struct {
	createUseCase          *transaction.CreateTransactionUseCase
	getUseCase             *transaction.GetTransactionUseCase
	listUseCase            *transaction.ListTransactionsUseCase
	listByTypeUseCase      *transaction.ListTransactionsByTypeUseCase
	listByCategoryUseCase  *transaction.ListTransactionsByCategoryUseCase
	listByDateRangeUseCase *transaction.ListTransactionsByDateRangeUseCase
	updateUseCase          *transaction.UpdateTransactionUseCase
	deleteUseCase          *transaction.DeleteTransactionUseCase
	summaryUseCase         *transaction.SummarizeTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	listByTypeUseCase *transaction.ListTransactionsByTypeUseCase,
	listByCategoryUseCase *transaction.ListTransactionsByCategoryUseCase,
	listByDateRangeUseCase *transaction.ListTransactionsByDateRangeUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	summaryUseCase *transaction.SummarizeTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:          createUseCase,
		getUseCase:             getUseCase,
		listUseCase:            listUseCase,
		listByTypeUseCase:      listByTypeUseCase,
		listByCategoryUseCase:  listByCategoryUseCase,
		listByDateRangeUseCase: listByDateRangeUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		summaryUseCase:         summaryUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// ListByType handles GET /transactions/type/:type requests.
func (c *TransactionController) ListByType(ctx *gin.Context) {
	output, err := c.listByTypeUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsByTypeInput{
		Type: ctx.Param("type"),
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// ListByCategory handles GET /transactions/category/:category requests.
func (c *TransactionController) ListByCategory(ctx *gin.Context) {
	output, err := c.listByCategoryUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsByCategoryInput{
		Category: ctx.Param("category"),
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// ListByDateRange handles GET /transactions/range?startDate=&endDate= requests.
func (c *TransactionController) ListByDateRange(ctx *gin.Context) {
	start, end, ok := bindDateRange(ctx, string(domainerror.ErrCodeInvalidDateRange))
	if !ok {
		return
	}

	output, err := c.listByDateRangeUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsByDateRangeInput{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Summary handles GET /transactions/summary requests.
// The startDate/endDate query parameters are optional but must come together.
func (c *TransactionController) Summary(ctx *gin.Context) {
	input := transaction.SummarizeTransactionsInput{}

	startRaw, endRaw := ctx.Query("startDate"), ctx.Query("endDate")
	if startRaw != "" || endRaw != "" {
		start, end, err := dto.DateRangeQuery{StartDate: startRaw, EndDate: endRaw}.Parse()
		if err != nil {
			writeInvalidDateRange(ctx, string(domainerror.ErrCodeInvalidDateRange))
			return
		}
		input.StartDate = &start
		input.EndDate = &end
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionSummaryResponse(output.Totals))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeInvalidTransactionID))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{ID: id})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		TransactionFields: fields,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeInvalidTransactionID))
	if !ok {
		return
	}
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:                id,
		TransactionFields: fields,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, string(domainerror.ErrCodeInvalidTransactionID))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: id}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// bindFields parses the request body. On failure it writes a 400 response.
func (c *TransactionController) bindFields(ctx *gin.Context) (transaction.TransactionFields, bool) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return transaction.TransactionFields{}, false
	}

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return transaction.TransactionFields{}, false
	}

	return transaction.TransactionFields{
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}, true
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		writeDomainError(ctx, err, string(txnErr.Code), txnErr.Message)
		return
	}
	writeInternalError(ctx, err)
}
