package usecase

import (
	"context"
	"time"

	"market_terminal/internal/feature/quotes/domain/entity"
	"market_terminal/internal/platform/cache"
)

// tickersSnapshotKey names the cached watchlist dataset in the snapshot
// store.
const tickersSnapshotKey = "tickers"

// WatchlistRepository supplies the symbols the board resolves. Following Go
// convention: interfaces are defined by the consumer (usecase).
type WatchlistRepository interface {
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// TickersUsecase serves the resolved watchlist through the snapshot store
// so concurrent dashboard polls within the TTL hit memory instead of the
// providers.
type TickersUsecase struct {
	resolver  *QuoteResolver
	watchlist WatchlistRepository
	snapshots *cache.SnapshotStore
	ttl       time.Duration
}

// NewTickersUsecase creates a TickersUsecase. If ttl is 0 it defaults to 25
// seconds.
func NewTickersUsecase(resolver *QuoteResolver, watchlist WatchlistRepository, snapshots *cache.SnapshotStore, ttl time.Duration) *TickersUsecase {
	if ttl <= 0 {
		ttl = 25 * time.Second
	}
	return &TickersUsecase{
		resolver:  resolver,
		watchlist: watchlist,
		snapshots: snapshots,
		ttl:       ttl,
	}
}

// GetTickers returns the watchlist quotes, refreshed at most once per TTL.
func (u *TickersUsecase) GetTickers(ctx context.Context) ([]entity.Quote, error) {
	payload, err := u.snapshots.GetOrRefresh(ctx, tickersSnapshotKey, u.ttl, func(ctx context.Context) (any, error) {
		codes, err := u.watchlist.ListActiveCodes(ctx)
		if err != nil {
			return nil, err
		}
		return u.resolver.Resolve(ctx, codes), nil
	})
	if err != nil && payload == nil {
		return nil, err
	}
	quotes, _ := payload.([]entity.Quote)
	return quotes, nil
}

// GetMovers ranks the current watchlist snapshot into gainers and losers.
func (u *TickersUsecase) GetMovers(ctx context.Context) (Movers, error) {
	quotes, err := u.GetTickers(ctx)
	if err != nil {
		return Movers{Gainers: []entity.Quote{}, Losers: []entity.Quote{}}, err
	}
	return RankMovers(quotes, DefaultMoverCount), nil
}
