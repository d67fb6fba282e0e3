// Package handler provides HTTP handlers for the history feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_terminal/internal/feature/history/usecase"
)

// MetricsUsecase is the usecase surface this handler consumes. Following Go
// convention: interfaces are defined by the consumer (handler).
type MetricsUsecase interface {
	GetMetrics(ctx context.Context, symbol string) usecase.Metrics
}

// MetricsHandler serves performance windows and company profiles.
type MetricsHandler struct {
	uc MetricsUsecase
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(uc MetricsUsecase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// Metrics returns best-effort performance metrics for ?symbol=X. History
// failures surface as null windows, not as an HTTP error.
func (h *MetricsHandler) Metrics(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, h.uc.GetMetrics(c.Request.Context(), symbol))
}
