package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	var loadErr *agent.LoadError
	if errors.As(err, &loadErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": loadErr.Error()})
		return
	}
	var sigErr *agent.SignatureError
	if errors.As(err, &sigErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": sigErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrNotCancellable) {
		c.JSON(http.StatusConflict, gin.H{"error": "run is not in a cancellable state"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}
	if errors.Is(err, services.ErrSuiteBusy) {
		c.JSON(http.StatusConflict, gin.H{"error": "suite has an active run"})
		return
	}
	if errors.Is(err, services.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
