// Package adapters provides history-source implementations for the history
// feature.
package adapters

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"market_terminal/internal/feature/history/domain/entity"
	"market_terminal/internal/feature/history/usecase"
)

const defaultStooqBaseURL = "https://stooq.com"

// StooqHistory fetches daily close series from Stooq's CSV download
// endpoint. Keyless and generous enough for on-demand metrics requests.
type StooqHistory struct {
	baseURL string
	client  *http.Client
}

var _ usecase.HistoryRepository = (*StooqHistory)(nil)

// NewStooqHistory creates a Stooq history repository. An empty baseURL
// selects the production endpoint.
func NewStooqHistory(baseURL string, client *http.Client) *StooqHistory {
	if baseURL == "" {
		baseURL = defaultStooqBaseURL
	}
	return &StooqHistory{baseURL: baseURL, client: client}
}

// stooqCode converts a US ticker to Stooq's naming, same scheme as the
// quote endpoint.
func stooqCode(symbol string) string {
	return strings.ReplaceAll(strings.ToLower(symbol), ".", "-") + ".us"
}

// DailyCloses returns up to maxPoints daily closes, oldest first. Rows with
// unparseable dates or closes are skipped rather than failing the series.
func (s *StooqHistory) DailyCloses(ctx context.Context, symbol string, maxPoints int) ([]entity.ClosePoint, error) {
	q := url.Values{}
	q.Set("s", stooqCode(symbol))
	q.Set("i", "d")
	u := fmt.Sprintf("%s/q/d/l/?%s", s.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stooq http %d", res.StatusCode)
	}

	r := csv.NewReader(res.Body)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	// Locate Date and Close columns from the header row.
	dateIdx, closeIdx := -1, -1
	for i, col := range records[0] {
		switch col {
		case "Date":
			dateIdx = i
		case "Close":
			closeIdx = i
		}
	}
	if dateIdx < 0 || closeIdx < 0 {
		return nil, fmt.Errorf("stooq csv: missing Date/Close columns")
	}

	closes := make([]entity.ClosePoint, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) <= dateIdx || len(record) <= closeIdx {
			continue
		}
		date, err := time.Parse("2006-01-02", record[dateIdx])
		if err != nil {
			continue
		}
		c, err := strconv.ParseFloat(record[closeIdx], 64)
		if err != nil {
			continue
		}
		closes = append(closes, entity.ClosePoint{Date: date, Close: c})
	}

	if maxPoints > 0 && len(closes) > maxPoints {
		closes = closes[len(closes)-maxPoints:]
	}
	return closes, nil
}
