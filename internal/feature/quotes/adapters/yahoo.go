// Package adapters provides quote-provider implementations for the quotes
// feature. Every adapter translates one upstream wire format into the
// canonical Quote shape and reports transport failures as errors for the
// resolver to swallow.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"market_terminal/internal/feature/quotes/domain/entity"
	"market_terminal/internal/feature/quotes/usecase"
)

const (
	defaultYahooBaseURL = "https://query1.finance.yahoo.com"
	// yahooChunkSize is the largest symbol batch the v7 quote endpoint
	// accepts reliably.
	yahooChunkSize = 35

	// browserUserAgent is required by Yahoo, which rejects default Go
	// client agents.
	browserUserAgent = "Mozilla/5.0"
)

// YahooQuotes fetches batched quotes from the Yahoo Finance v7 endpoint.
// It is the highest-priority provider because it needs no API key and
// reports change percentages directly.
type YahooQuotes struct {
	baseURL string
	client  *http.Client
}

var _ usecase.Provider = (*YahooQuotes)(nil)

// NewYahooQuotes creates a Yahoo quote provider. An empty baseURL selects
// the production endpoint; tests point it at a local server.
func NewYahooQuotes(baseURL string, client *http.Client) *YahooQuotes {
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	return &YahooQuotes{baseURL: baseURL, client: client}
}

// Name identifies the provider in logs.
func (y *YahooQuotes) Name() string { return "yahoo" }

// yahooQuoteNode is one symbol's entry in the v7 quote response. Pointer
// fields distinguish "absent" from zero.
type yahooQuoteNode struct {
	Symbol                     string   `json:"symbol"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	PostMarketPrice            *float64 `json:"postMarketPrice"`
	Bid                        *float64 `json:"bid"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
	PostMarketChangePercent    *float64 `json:"postMarketChangePercent"`
}

type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []yahooQuoteNode `json:"result"`
	} `json:"quoteResponse"`
}

// Fetch splits symbols into chunks, fetches the chunks concurrently and
// merges the results back into input order. Chunks are independent, so no
// ordering is imposed between the requests themselves.
func (y *YahooQuotes) Fetch(ctx context.Context, symbols []string) ([]entity.Quote, error) {
	out := make([]entity.Quote, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(symbols); start += yahooChunkSize {
		end := start + yahooChunkSize
		if end > len(symbols) {
			end = len(symbols)
		}
		start, chunk := start, symbols[start:end]
		g.Go(func() error {
			quotes, err := y.fetchChunk(ctx, chunk)
			if err != nil {
				return err
			}
			copy(out[start:], quotes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// fetchChunk requests one symbol batch and returns one Quote per symbol in
// chunk order.
func (y *YahooQuotes) fetchChunk(ctx context.Context, chunk []string) ([]entity.Quote, error) {
	q := url.Values{}
	q.Set("symbols", strings.Join(chunk, ","))
	u := fmt.Sprintf("%s/v7/finance/quote?%s", y.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(res)

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body yahooQuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	bySymbol := make(map[string]yahooQuoteNode, len(body.QuoteResponse.Result))
	for _, node := range body.QuoteResponse.Result {
		if node.Symbol != "" {
			bySymbol[strings.ToUpper(node.Symbol)] = node
		}
	}

	quotes := make([]entity.Quote, 0, len(chunk))
	for _, s := range chunk {
		quote := entity.Quote{Symbol: s}
		if node, ok := bySymbol[strings.ToUpper(s)]; ok {
			// Price preference mirrors the dashboard's display: last
			// regular trade, then post-market, then best bid.
			quote.Price = firstNonNil(node.RegularMarketPrice, node.PostMarketPrice, node.Bid)
			quote.ChangePct = firstNonNil(node.RegularMarketChangePercent, node.PostMarketChangePercent)
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

func firstNonNil(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
