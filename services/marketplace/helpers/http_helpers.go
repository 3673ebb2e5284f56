package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, auctionerrors.ErrDuplicateEmail):
		return http.StatusConflict, "email already exists"
	case errors.Is(err, auctionerrors.ErrInvalidCredential):
		return http.StatusUnauthorized, "incorrect password"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, auctionerrors.ErrUnknownSeller):
		return http.StatusNotFound, "seller does not exist"
	case errors.Is(err, auctionerrors.ErrUnknownItem):
		return http.StatusNotFound, "item does not exist"
	case errors.Is(err, auctionerrors.ErrUnknownBuyer):
		return http.StatusNotFound, "buyer does not exist"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
