package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"market_terminal/internal/feature/news/domain/entity"
	"market_terminal/internal/feature/news/usecase"
)

const defaultYahooSearchBaseURL = "https://query1.finance.yahoo.com"

// YahooSearchNews fetches headlines from Yahoo Finance's search endpoint.
// Keyless, so it always sits at the end of the chain as the provider of
// last resort. Yahoo search has no summaries or timestamps; those fields
// stay empty.
type YahooSearchNews struct {
	baseURL string
	client  *http.Client
}

var _ usecase.NewsProvider = (*YahooSearchNews)(nil)

// NewYahooSearchNews creates a Yahoo search news provider. An empty baseURL
// selects the production endpoint.
func NewYahooSearchNews(baseURL string, client *http.Client) *YahooSearchNews {
	if baseURL == "" {
		baseURL = defaultYahooSearchBaseURL
	}
	return &YahooSearchNews{baseURL: baseURL, client: client}
}

// Name identifies the provider in logs.
func (y *YahooSearchNews) Name() string { return "yahoo-search" }

// Enabled always reports true; no key is needed.
func (y *YahooSearchNews) Enabled() bool { return true }

type yahooSearchResponse struct {
	News []struct {
		Title     string `json:"title"`
		Link      string `json:"link"`
		Publisher string `json:"publisher"`
	} `json:"news"`
}

// SymbolNews searches Yahoo for the symbol.
func (y *YahooSearchNews) SymbolNews(ctx context.Context, symbol string, limit int) ([]entity.NewsItem, error) {
	return y.search(ctx, symbol, limit)
}

// MarketNews searches Yahoo for general market coverage.
func (y *YahooSearchNews) MarketNews(ctx context.Context, limit int) ([]entity.NewsItem, error) {
	return y.search(ctx, "markets", limit)
}

func (y *YahooSearchNews) search(ctx context.Context, query string, limit int) ([]entity.NewsItem, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", "0")
	q.Set("newsCount", strconv.Itoa(limit))
	u := fmt.Sprintf("%s/v1/finance/search?%s", y.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo search http %d", res.StatusCode)
	}

	var body yahooSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	items := make([]entity.NewsItem, 0, len(body.News))
	for _, n := range body.News {
		source := n.Publisher
		if source == "" {
			source = "Yahoo"
		}
		items = append(items, entity.NewsItem{
			Title:  n.Title,
			URL:    n.Link,
			Source: source,
		})
	}
	return items, nil
}
