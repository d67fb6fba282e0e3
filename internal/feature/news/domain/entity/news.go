// Package entity defines the domain models for the news feature.
package entity

// NewsItem represents one headline as returned by a news provider.
// PublishedAt keeps the provider's native format (Finnhub: epoch seconds as
// a decimal string, NewsAPI: ISO-8601, Yahoo search: empty); the dashboard
// renders it as-is.
type NewsItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Summary     string `json:"summary"`
	PublishedAt string `json:"published_at"`
}
