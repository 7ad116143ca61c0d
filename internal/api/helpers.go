package api

import (
	"errors"
	"net/http"

	"group-decision/internal/service"
	"group-decision/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func getUserIDFromContext(c *gin.Context) (string, bool) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		logger.L.Error("Invalid userID type in context", zap.Any("userIDValue", userIDValue))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID in context"})
		return "", false
	}
	return userID, true
}

// writeError maps the service error taxonomy onto HTTP status codes.
func writeError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCodeSpaceExhausted):
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTransient):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": fallback, "retryable": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
