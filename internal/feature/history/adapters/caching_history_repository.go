package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"market_terminal/internal/feature/history/domain/entity"
	"market_terminal/internal/feature/history/usecase"
)

// CachingHistoryRepository decorates a HistoryRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. History series change once per
// trading day, so they are a much better Redis fit than the short-lived
// ticker snapshots.
type CachingHistoryRepository struct {
	inner     usecase.HistoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.HistoryRepository = (*CachingHistoryRepository)(nil)

// NewCachingHistoryRepository decorates a HistoryRepository with Redis
// caching. If ttl is 0, it defaults to 10 minutes. If namespace is empty,
// it uses "history". A nil Redis client disables caching entirely.
func NewCachingHistoryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.HistoryRepository, namespace string) *CachingHistoryRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "history"
	}
	return &CachingHistoryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// DailyCloses retrieves a close series, checking cache first then falling
// back to the underlying source.
func (c *CachingHistoryRepository) DailyCloses(ctx context.Context, symbol string, maxPoints int) ([]entity.ClosePoint, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.DailyCloses(ctx, symbol, maxPoints)
	}

	key := c.cacheKey(symbol, maxPoints)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.ClosePoint
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the upstream source
	out, err := c.inner.DailyCloses(ctx, symbol, maxPoints)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if len(out) > 0 {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
		}
	}

	return out, nil
}

// cacheKey generates a cache key for a specific series request.
func (c *CachingHistoryRepository) cacheKey(symbol string, maxPoints int) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(symbol), maxPoints)
}

// safe strips key-delimiter characters from user-supplied values.
func safe(s string) string {
	return strings.NewReplacer(":", "_", "*", "_", " ", "_").Replace(strings.ToUpper(s))
}
