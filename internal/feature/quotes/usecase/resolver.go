// Package usecase implements quote resolution and ranking.
package usecase

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"market_terminal/internal/feature/quotes/domain/entity"
)

// Provider fetches raw quotes for a batch of symbols from one upstream
// source. Implementations may return partial data (some symbols missing or
// unpriced) and should return an error only for transport-level failures.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, symbols []string) ([]entity.Quote, error)
}

// QuoteResolver maps a symbol list to one Quote per symbol by querying
// providers in priority order. A provider's whole batch is discarded when it
// yields no usable price at all; the first provider with at least one priced
// symbol wins, and its gaps are NOT filled from lower-priority providers.
type QuoteResolver struct {
	providers []Provider
}

// NewQuoteResolver creates a resolver that tries providers in the given
// order.
func NewQuoteResolver(providers ...Provider) *QuoteResolver {
	return &QuoteResolver{providers: providers}
}

// Resolve returns exactly one Quote per input symbol, in input order.
// Provider failures are logged and treated as empty results; Resolve itself
// never fails, so callers always get a best-effort list.
func (r *QuoteResolver) Resolve(ctx context.Context, symbols []string) []entity.Quote {
	var chosen []entity.Quote
	for _, p := range r.providers {
		quotes, err := p.Fetch(ctx, symbols)
		if err != nil {
			slog.Warn("quote provider failed", "provider", p.Name(), "error", err)
			continue
		}
		if !anyPriced(quotes) {
			slog.Debug("quote provider returned no prices", "provider", p.Name())
			continue
		}
		chosen = quotes
		break
	}
	return normalize(symbols, chosen)
}

// anyPriced reports whether at least one quote carries a price.
func anyPriced(quotes []entity.Quote) bool {
	for _, q := range quotes {
		if q.HasPrice() {
			return true
		}
	}
	return false
}

// normalize rebuilds the result in input order and enforces the Quote
// invariant: a known price with no change figure defaults to 0.0, an
// unknown price forces the change to unknown as well. Symbols the provider
// never mentioned come back with both fields unknown.
func normalize(symbols []string, quotes []entity.Quote) []entity.Quote {
	bySymbol := make(map[string]entity.Quote, len(quotes))
	for _, q := range quotes {
		bySymbol[strings.ToUpper(q.Symbol)] = q
	}

	out := make([]entity.Quote, 0, len(symbols))
	for _, s := range symbols {
		norm := entity.Quote{Symbol: s}
		if q, ok := bySymbol[strings.ToUpper(s)]; ok && q.Price != nil {
			norm.Price = round2(*q.Price)
			if q.ChangePct != nil {
				norm.ChangePct = round2(*q.ChangePct)
			} else {
				norm.ChangePct = round2(0.0)
			}
		}
		out = append(out, norm)
	}
	return out
}

// round2 rounds to two decimals, the precision the dashboard displays.
func round2(v float64) *float64 {
	r := math.Round(v*100) / 100
	return &r
}
