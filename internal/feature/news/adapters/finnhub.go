// Package adapters provides news-provider implementations for the news
// feature.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"market_terminal/internal/feature/news/domain/entity"
	"market_terminal/internal/feature/news/usecase"
)

const (
	defaultFinnhubBaseURL = "https://finnhub.io/api/v1"
	// finnhubLookback is how far back company-news searches reach.
	finnhubLookback = 7 * 24 * time.Hour
)

// FinnhubNews fetches company and general market news from Finnhub.
// Highest-priority news provider when a key is configured.
type FinnhubNews struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ usecase.NewsProvider = (*FinnhubNews)(nil)

// NewFinnhubNews creates a Finnhub news provider. An empty baseURL selects
// the production endpoint.
func NewFinnhubNews(apiKey, baseURL string, client *http.Client) *FinnhubNews {
	if baseURL == "" {
		baseURL = defaultFinnhubBaseURL
	}
	return &FinnhubNews{apiKey: apiKey, baseURL: baseURL, client: client}
}

// Name identifies the provider in logs.
func (f *FinnhubNews) Name() string { return "finnhub" }

// Enabled reports whether an API key is configured.
func (f *FinnhubNews) Enabled() bool { return f.apiKey != "" }

// finnhubArticle is one entry in Finnhub's news responses. Datetime is
// epoch seconds.
type finnhubArticle struct {
	Headline string `json:"headline"`
	URL      string `json:"url"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	Datetime int64  `json:"datetime"`
}

// SymbolNews fetches company news from the last seven days.
func (f *FinnhubNews) SymbolNews(ctx context.Context, symbol string, limit int) ([]entity.NewsItem, error) {
	now := time.Now().UTC()
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("from", now.Add(-finnhubLookback).Format("2006-01-02"))
	q.Set("to", now.Format("2006-01-02"))
	q.Set("token", f.apiKey)
	return f.fetch(ctx, fmt.Sprintf("%s/company-news?%s", f.baseURL, q.Encode()), limit)
}

// MarketNews fetches general market headlines.
func (f *FinnhubNews) MarketNews(ctx context.Context, limit int) ([]entity.NewsItem, error) {
	q := url.Values{}
	q.Set("category", "general")
	q.Set("minId", "0")
	q.Set("token", f.apiKey)
	return f.fetch(ctx, fmt.Sprintf("%s/news?%s", f.baseURL, q.Encode()), limit)
}

func (f *FinnhubNews) fetch(ctx context.Context, u string, limit int) ([]entity.NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("finnhub http %d", res.StatusCode)
	}

	var articles []finnhubArticle
	if err := json.NewDecoder(res.Body).Decode(&articles); err != nil {
		return nil, err
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}

	items := make([]entity.NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, entity.NewsItem{
			Title:       a.Headline,
			URL:         a.URL,
			Source:      a.Source,
			Summary:     a.Summary,
			PublishedAt: strconv.FormatInt(a.Datetime, 10),
		})
	}
	return items, nil
}
