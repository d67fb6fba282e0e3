// Package handler provides HTTP handlers for the quotes feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_terminal/internal/feature/quotes/domain/entity"
	"market_terminal/internal/feature/quotes/usecase"
)

// TickersUsecase is the usecase surface this handler consumes. Following Go
// convention: interfaces are defined by the consumer (handler).
type TickersUsecase interface {
	GetTickers(ctx context.Context) ([]entity.Quote, error)
	GetMovers(ctx context.Context) (usecase.Movers, error)
}

// QuotesHandler serves the resolved watchlist and its movers.
type QuotesHandler struct {
	uc TickersUsecase
}

// NewQuotesHandler creates a new QuotesHandler.
func NewQuotesHandler(uc TickersUsecase) *QuotesHandler {
	return &QuotesHandler{uc: uc}
}

// Tickers returns the cached watchlist quotes. Provider outages never reach
// this handler; the resolver degrades to null-fielded quotes instead. The
// only error path left is watchlist storage.
func (h *QuotesHandler) Tickers(c *gin.Context) {
	quotes, err := h.uc.GetTickers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if quotes == nil {
		quotes = []entity.Quote{}
	}
	c.JSON(http.StatusOK, quotes)
}

// Movers returns top gainers and losers ranked from the same snapshot.
func (h *QuotesHandler) Movers(c *gin.Context) {
	movers, err := h.uc.GetMovers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, movers)
}
