package delivery

import (
	"context"
	"errors"
	"net/http"
	"shop_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"status"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Status:  "fail",
		Code:    code,
		Message: message,
	})
}

// FailFromError renders err with the HTTP status and machine-readable code
// derived from its classification.
func FailFromError(c *gin.Context, err error) {
	ErrorResponse(c, statusFromError(err), codeFromError(err), displayMessage(err))
}

func statusFromError(err error) int {
	// A timed-out persistence call is retryable by the caller, not fatal.
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, domain.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return http.StatusConflict
	}
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindReference:
		return http.StatusBadRequest
	case domain.KindPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func codeFromError(err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return "not_found"
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return "duplicate"
	}
	return string(domain.KindOf(err))
}

// displayMessage surfaces only the curated message of a classified error;
// anything else collapses to a generic failure so internals never leak.
func displayMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal server error"
}
