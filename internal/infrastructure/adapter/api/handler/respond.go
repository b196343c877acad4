package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error family to an HTTP status and writes the
// standardized error body. Internal errors never leak their message.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case domainerr.IsConflictError(err):
		status = http.StatusConflict
		message = err.Error()
	case domainerr.IsInsufficientPointsError(err):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case domainerr.IsTableLockedError(err):
		status = http.StatusLocked
		message = err.Error()
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// badRequest writes a 400 with the given message and error code
func badRequest(c *gin.Context, sentinel error, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(sentinel),
		Message: message,
	})
}
