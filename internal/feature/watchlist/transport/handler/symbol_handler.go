// Package handler provides HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_terminal/internal/feature/watchlist/domain/entity"
	"market_terminal/internal/feature/watchlist/transport/http/dto"
)

// WatchlistUsecase is the usecase surface this handler consumes. Following
// Go convention: interfaces are defined by the consumer (handler).
type WatchlistUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler serves the watchlist contents.
type SymbolHandler struct {
	uc WatchlistUsecase
}

// NewSymbolHandler creates a new SymbolHandler.
func NewSymbolHandler(uc WatchlistUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List returns the active watchlist entries. A storage error is the one
// case this API surfaces as 500; it is local state, not a flaky provider.
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{Code: s.Code, Name: s.Name})
	}
	c.JSON(http.StatusOK, out)
}
