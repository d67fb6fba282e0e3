// Command fetch resolves the current watchlist once and prints the quotes
// as JSON. Useful for checking provider health without starting the server.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"market_terminal/internal/config"
	quotesadapters "market_terminal/internal/feature/quotes/adapters"
	quotesusecase "market_terminal/internal/feature/quotes/usecase"
	watchlistadapters "market_terminal/internal/feature/watchlist/adapters"
	infradb "market_terminal/internal/platform/db"
	platformhttp "market_terminal/internal/platform/http"
	"market_terminal/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	db := infradb.OpenDB(cfg.SQLitePath)
	if err := watchlistadapters.SeedDefaultWatchlist(db); err != nil {
		log.Fatal("failed to seed watchlist:", err)
	}
	symbolRepo := watchlistadapters.NewSymbolRepository(db)

	client := platformhttp.NewHTTPClient(cfg.HTTPTimeout)
	resolver := quotesusecase.NewQuoteResolver(
		quotesadapters.NewYahooQuotes("", client),
		quotesadapters.NewStooqQuotes("", client),
		quotesadapters.NewTwelveDataQuotes(cfg.TwelveDataAPIKey, "", client,
			ratelimiter.NewRateLimiter(8, time.Minute)),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	symbols, err := symbolRepo.ListActiveCodes(ctx)
	if err != nil {
		log.Fatal("failed to load symbols:", err)
	}

	quotes := resolver.Resolve(ctx, symbols)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(quotes); err != nil {
		log.Fatal(err)
	}
}
