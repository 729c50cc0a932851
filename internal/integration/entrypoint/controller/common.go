package controller

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

const internalErrorMessage = "An internal error occurred"

// parseID reads the :id path parameter. On failure it writes a 400 response
// and returns false.
func parseID(ctx *gin.Context, code string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
			Code:  code,
		})
		return 0, false
	}
	return id, true
}

// bindDateRange reads the required startDate/endDate query parameters.
// On failure it writes a 400 response and returns false.
func bindDateRange(ctx *gin.Context, code string) (time.Time, time.Time, bool) {
	var query dto.DateRangeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		writeInvalidDateRange(ctx, code)
		return time.Time{}, time.Time{}, false
	}
	start, end, err := query.Parse()
	if err != nil {
		writeInvalidDateRange(ctx, code)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func writeInvalidDateRange(ctx *gin.Context, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "startDate and endDate must be YYYY-MM-DD",
		Code:  code,
	})
}

// statusForError maps an error kind to an HTTP status.
func statusForError(err error) int {
	switch {
	case domainerror.IsNotFound(err):
		return http.StatusNotFound
	case domainerror.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError writes a coded error. Internal failures are logged and
// their details are not sent to the client.
func writeDomainError(ctx *gin.Context, err error, code, message string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed",
			"request_id", middleware.GetRequestID(ctx),
			"code", code,
			"error", err,
		)
		message = internalErrorMessage
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeInternalError writes a generic 500 response for an uncoded error.
func writeInternalError(ctx *gin.Context, err error) {
	slog.Error("Request failed",
		"request_id", middleware.GetRequestID(ctx),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: internalErrorMessage,
	})
}
