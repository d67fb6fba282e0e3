package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"market_terminal/internal/feature/quotes/domain/entity"
	"market_terminal/internal/feature/quotes/usecase"
	"market_terminal/internal/shared/ratelimiter"
)

const defaultTwelveDataBaseURL = "https://api.twelvedata.com"

// TwelveDataQuotes fetches quotes from the Twelve Data /quote endpoint.
// Lowest-priority provider: it needs an API key and burns free-tier credits,
// so calls pass through a rate limiter. With no key configured it reports
// an all-unknown batch, which makes the resolver move on.
type TwelveDataQuotes struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

var _ usecase.Provider = (*TwelveDataQuotes)(nil)

// NewTwelveDataQuotes creates a Twelve Data quote provider. limiter may be
// nil to disable throttling (tests).
func NewTwelveDataQuotes(apiKey, baseURL string, client *http.Client, limiter ratelimiter.RateLimiterInterface) *TwelveDataQuotes {
	if baseURL == "" {
		baseURL = defaultTwelveDataBaseURL
	}
	return &TwelveDataQuotes{apiKey: apiKey, baseURL: baseURL, client: client, limiter: limiter}
}

// Name identifies the provider in logs.
func (t *TwelveDataQuotes) Name() string { return "twelvedata" }

// tdQuoteNode is one symbol's entry in the /quote response. All numbers
// arrive as strings.
type tdQuoteNode struct {
	Symbol        string `json:"symbol"`
	Price         string `json:"price"`
	PercentChange string `json:"percent_change"`
	ChangePercent string `json:"change_percent"`
}

// Fetch requests the whole batch in one call. Multi-symbol responses are an
// object keyed by symbol; a single-symbol response is the quote object
// itself.
func (t *TwelveDataQuotes) Fetch(ctx context.Context, symbols []string) ([]entity.Quote, error) {
	out := make([]entity.Quote, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, entity.Quote{Symbol: s})
	}
	if t.apiKey == "" {
		return out, nil
	}

	if t.limiter != nil {
		t.limiter.WaitIfNeeded()
	}

	q := url.Values{}
	q.Set("symbol", strings.Join(symbols, ","))
	q.Set("apikey", t.apiKey)
	u := fmt.Sprintf("%s/quote?%s", t.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(res)

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	nodes := decodeTwelveDataQuotes(raw, symbols)
	for i, s := range symbols {
		node, ok := nodes[strings.ToUpper(s)]
		if !ok {
			continue
		}
		out[i].Price = parseTDFloat(node.Price)
		if out[i].Price != nil {
			pct := node.PercentChange
			if pct == "" {
				pct = node.ChangePercent
			}
			out[i].ChangePct = parseTDFloat(pct)
		}
	}
	return out, nil
}

// decodeTwelveDataQuotes handles both response shapes and indexes nodes by
// upper-cased symbol.
func decodeTwelveDataQuotes(raw []byte, symbols []string) map[string]tdQuoteNode {
	nodes := make(map[string]tdQuoteNode)

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nodes
	}

	// Single-symbol responses carry the quote fields at the top level.
	if _, ok := keyed["symbol"]; ok && len(symbols) == 1 {
		var node tdQuoteNode
		if err := json.Unmarshal(raw, &node); err == nil && node.Symbol != "" {
			nodes[strings.ToUpper(node.Symbol)] = node
		}
		return nodes
	}

	for _, s := range symbols {
		msg, ok := keyed[s]
		if !ok {
			continue
		}
		var node tdQuoteNode
		if err := json.Unmarshal(msg, &node); err != nil {
			continue
		}
		nodes[strings.ToUpper(s)] = node
	}
	return nodes
}

// parseTDFloat parses a Twelve Data numeric string; empty means no data.
func parseTDFloat(cell string) *float64 {
	if cell == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return &v
}
