// Package handler provides HTTP handlers for the news feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_terminal/internal/feature/news/domain/entity"
)

// NewsUsecase is the usecase surface this handler consumes. Following Go
// convention: interfaces are defined by the consumer (handler).
type NewsUsecase interface {
	SymbolNews(ctx context.Context, symbol string) []entity.NewsItem
	MarketNews(ctx context.Context) []entity.NewsItem
}

// SentimentUsecase scores recent headline text for one symbol.
type SentimentUsecase interface {
	Score(ctx context.Context, symbol string) float64
}

// NewsHandler serves headlines and sentiment scores.
type NewsHandler struct {
	news      NewsUsecase
	sentiment SentimentUsecase
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(news NewsUsecase, sentiment SentimentUsecase) *NewsHandler {
	return &NewsHandler{news: news, sentiment: sentiment}
}

// SymbolNews returns recent headlines for ?symbol=X. Provider exhaustion
// yields an empty array with 200, never an error.
func (h *NewsHandler) SymbolNews(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, h.news.SymbolNews(c.Request.Context(), symbol))
}

// MarketNews returns cached general market headlines.
func (h *NewsHandler) MarketNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.news.MarketNews(c.Request.Context()))
}

// Sentiment returns the average lexicon compound score for ?symbol=X.
func (h *NewsHandler) Sentiment(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"symbol":   symbol,
		"compound": h.sentiment.Score(c.Request.Context(), symbol),
	})
}
