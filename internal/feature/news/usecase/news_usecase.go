// Package usecase implements headline retrieval and sentiment scoring.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"market_terminal/internal/feature/news/domain/entity"
	"market_terminal/internal/platform/cache"
)

const (
	// marketNewsSnapshotKey names the cached market-news dataset.
	marketNewsSnapshotKey = "market_news"

	// SymbolNewsLimit and MarketNewsLimit bound how many headlines each
	// endpoint returns.
	SymbolNewsLimit = 30
	MarketNewsLimit = 50
)

// NewsProvider fetches headlines from one upstream source. Enabled reports
// whether the provider is usable (keyed providers without a key are
// skipped). Following Go convention: interfaces are defined by the consumer
// (usecase).
type NewsProvider interface {
	Name() string
	Enabled() bool
	SymbolNews(ctx context.Context, symbol string, limit int) ([]entity.NewsItem, error)
	MarketNews(ctx context.Context, limit int) ([]entity.NewsItem, error)
}

// NewsUsecase resolves headlines through a provider chain: the first
// enabled provider that responds wins, even with an empty list; transport
// failures fall through to the next provider. An exhausted chain yields an
// empty list, never an error.
type NewsUsecase struct {
	providers []NewsProvider
	snapshots *cache.SnapshotStore
	marketTTL time.Duration
}

// NewNewsUsecase creates a NewsUsecase. If marketTTL is 0 it defaults to
// 180 seconds.
func NewNewsUsecase(snapshots *cache.SnapshotStore, marketTTL time.Duration, providers ...NewsProvider) *NewsUsecase {
	if marketTTL <= 0 {
		marketTTL = 180 * time.Second
	}
	return &NewsUsecase{providers: providers, snapshots: snapshots, marketTTL: marketTTL}
}

// SymbolNews returns recent headlines about one symbol.
func (u *NewsUsecase) SymbolNews(ctx context.Context, symbol string) []entity.NewsItem {
	return u.resolve(ctx, func(p NewsProvider) ([]entity.NewsItem, error) {
		return p.SymbolNews(ctx, symbol, SymbolNewsLimit)
	})
}

// MarketNews returns general market headlines, refreshed at most once per
// TTL.
func (u *NewsUsecase) MarketNews(ctx context.Context) []entity.NewsItem {
	payload, _ := u.snapshots.GetOrRefresh(ctx, marketNewsSnapshotKey, u.marketTTL, func(ctx context.Context) (any, error) {
		return u.resolve(ctx, func(p NewsProvider) ([]entity.NewsItem, error) {
			return p.MarketNews(ctx, MarketNewsLimit)
		}), nil
	})
	items, _ := payload.([]entity.NewsItem)
	if items == nil {
		items = []entity.NewsItem{}
	}
	return items
}

// resolve walks the provider chain with the given fetch.
func (u *NewsUsecase) resolve(ctx context.Context, fetch func(NewsProvider) ([]entity.NewsItem, error)) []entity.NewsItem {
	for _, p := range u.providers {
		if !p.Enabled() {
			continue
		}
		items, err := fetch(p)
		if err != nil {
			slog.Warn("news provider failed", "provider", p.Name(), "error", err)
			continue
		}
		if items == nil {
			items = []entity.NewsItem{}
		}
		return items
	}
	return []entity.NewsItem{}
}
