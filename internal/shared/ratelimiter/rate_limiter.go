// Package ratelimiter throttles calls to credit-limited provider APIs.
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface limits the frequency of an operation, such as calls
// to a metered provider endpoint.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter is a fixed-window limiter: up to limit calls per interval,
// sleeping until the window resets once the limit is hit. Safe for
// concurrent use.
type RateLimiter struct {
	limit    int
	interval time.Duration

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiter creates a limiter allowing limit calls per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the current window has room for one more call.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Info("rate limit hit, sleeping", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
