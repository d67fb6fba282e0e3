package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"market_terminal/internal/app/router"
	"market_terminal/internal/config"
	historyadapters "market_terminal/internal/feature/history/adapters"
	historyhandler "market_terminal/internal/feature/history/transport/handler"
	historyusecase "market_terminal/internal/feature/history/usecase"
	newsadapters "market_terminal/internal/feature/news/adapters"
	newshandler "market_terminal/internal/feature/news/transport/handler"
	newsusecase "market_terminal/internal/feature/news/usecase"
	quotesadapters "market_terminal/internal/feature/quotes/adapters"
	quoteshandler "market_terminal/internal/feature/quotes/transport/handler"
	quotesusecase "market_terminal/internal/feature/quotes/usecase"
	watchlistadapters "market_terminal/internal/feature/watchlist/adapters"
	watchlisthandler "market_terminal/internal/feature/watchlist/transport/handler"
	watchlistusecase "market_terminal/internal/feature/watchlist/usecase"
	"market_terminal/internal/platform/cache"
	infradb "market_terminal/internal/platform/db"
	platformhttp "market_terminal/internal/platform/http"
	infraredis "market_terminal/internal/platform/redis"
	"market_terminal/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	// db
	db := infradb.OpenDB(cfg.SQLitePath)
	if err := watchlistadapters.SeedDefaultWatchlist(db); err != nil {
		log.Fatal("failed to seed watchlist:", err)
	}

	// Redis (optional; only the history cache uses it)
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		log.Println("[WARN] REDIS_HOST not set. Running without history cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without history cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	client := platformhttp.NewHTTPClient(cfg.HTTPTimeout)

	// Quote providers in priority order. Twelve Data free tier allows 8
	// credits per minute, hence the limiter.
	resolver := quotesusecase.NewQuoteResolver(
		quotesadapters.NewYahooQuotes("", client),
		quotesadapters.NewStooqQuotes("", client),
		quotesadapters.NewTwelveDataQuotes(cfg.TwelveDataAPIKey, "", client,
			ratelimiter.NewRateLimiter(8, time.Minute)),
	)

	// Snapshot store shared by the short-TTL endpoints
	snapshots := cache.NewSnapshotStore(cache.KeepStale)

	// Repository
	symbolRepo := watchlistadapters.NewSymbolRepository(db)
	historyRepo := historyadapters.NewCachingHistoryRepository(rdb, cfg.HistoryTTL,
		historyadapters.NewStooqHistory("", client), "history")

	// Usecase
	watchlistUC := watchlistusecase.NewWatchlistUsecase(symbolRepo)
	tickersUC := quotesusecase.NewTickersUsecase(resolver, watchlistUC, snapshots, cfg.TickersTTL)
	metricsUC := historyusecase.NewMetricsUsecase(historyRepo)
	newsUC := newsusecase.NewNewsUsecase(snapshots, cfg.MarketNewsTTL,
		newsadapters.NewFinnhubNews(cfg.FinnhubAPIKey, "", client),
		newsadapters.NewNewsAPINews(cfg.NewsAPIKey, "", client),
		newsadapters.NewYahooSearchNews("", client),
	)
	sentimentUC := newsusecase.NewSentimentUsecase(newsUC)

	// Handler
	quotesH := quoteshandler.NewQuotesHandler(tickersUC)
	metricsH := historyhandler.NewMetricsHandler(metricsUC)
	newsH := newshandler.NewNewsHandler(newsUC, sentimentUC)
	symbolH := watchlisthandler.NewSymbolHandler(watchlistUC)

	r := router.NewRouter(quotesH, metricsH, newsH, symbolH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
