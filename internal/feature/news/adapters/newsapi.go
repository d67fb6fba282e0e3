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

const defaultNewsAPIBaseURL = "https://newsapi.org/v2"

// NewsAPINews fetches headlines from NewsAPI.org: keyword search for
// symbol news, US business top-headlines for market news.
type NewsAPINews struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ usecase.NewsProvider = (*NewsAPINews)(nil)

// NewNewsAPINews creates a NewsAPI provider. An empty baseURL selects the
// production endpoint.
func NewNewsAPINews(apiKey, baseURL string, client *http.Client) *NewsAPINews {
	if baseURL == "" {
		baseURL = defaultNewsAPIBaseURL
	}
	return &NewsAPINews{apiKey: apiKey, baseURL: baseURL, client: client}
}

// Name identifies the provider in logs.
func (n *NewsAPINews) Name() string { return "newsapi" }

// Enabled reports whether an API key is configured.
func (n *NewsAPINews) Enabled() bool { return n.apiKey != "" }

type newsAPIResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// SymbolNews searches everything for the symbol keyword.
func (n *NewsAPINews) SymbolNews(ctx context.Context, symbol string, limit int) ([]entity.NewsItem, error) {
	q := url.Values{}
	q.Set("q", symbol)
	q.Set("language", "en")
	q.Set("pageSize", strconv.Itoa(limit))
	q.Set("apiKey", n.apiKey)
	return n.fetch(ctx, fmt.Sprintf("%s/everything?%s", n.baseURL, q.Encode()))
}

// MarketNews fetches US business top-headlines.
func (n *NewsAPINews) MarketNews(ctx context.Context, limit int) ([]entity.NewsItem, error) {
	q := url.Values{}
	q.Set("country", "us")
	q.Set("category", "business")
	q.Set("pageSize", strconv.Itoa(limit))
	q.Set("apiKey", n.apiKey)
	return n.fetch(ctx, fmt.Sprintf("%s/top-headlines?%s", n.baseURL, q.Encode()))
}

func (n *NewsAPINews) fetch(ctx context.Context, u string) ([]entity.NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi http %d", res.StatusCode)
	}

	var body newsAPIResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	items := make([]entity.NewsItem, 0, len(body.Articles))
	for _, a := range body.Articles {
		items = append(items, entity.NewsItem{
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.Source.Name,
			Summary:     a.Description,
			PublishedAt: a.PublishedAt,
		})
	}
	return items, nil
}
