// Package router assembles the gin engine and its routes.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	historyhandler "market_terminal/internal/feature/history/transport/handler"
	newshandler "market_terminal/internal/feature/news/transport/handler"
	quoteshandler "market_terminal/internal/feature/quotes/transport/handler"
	watchlisthandler "market_terminal/internal/feature/watchlist/transport/handler"
	"market_terminal/internal/platform/http/handler"
)

// NewRouter wires every API route. The dashboard is a public read-only
// surface; CORS is wide open so the single-page frontend can be served from
// anywhere.
func NewRouter(quotes *quoteshandler.QuotesHandler, metrics *historyhandler.MetricsHandler,
	news *newshandler.NewsHandler, symbols *watchlisthandler.SymbolHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/tickers", quotes.Tickers)
		api.GET("/movers", quotes.Movers)
		api.GET("/metrics", metrics.Metrics)
		api.GET("/news", news.SymbolNews)
		api.GET("/market-news", news.MarketNews)
		api.GET("/sentiment", news.Sentiment)
		api.GET("/symbols", symbols.List)
	}

	return r
}
