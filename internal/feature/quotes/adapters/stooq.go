package adapters

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"market_terminal/internal/feature/quotes/domain/entity"
	"market_terminal/internal/feature/quotes/usecase"
)

const defaultStooqBaseURL = "https://stooq.com"

// StooqQuotes fetches current quotes from Stooq's CSV endpoint. Stooq has
// no change-percent field, so the change is derived from the session's open
// and close. Keyless, used as the first fallback behind Yahoo.
type StooqQuotes struct {
	baseURL string
	client  *http.Client
}

var _ usecase.Provider = (*StooqQuotes)(nil)

// NewStooqQuotes creates a Stooq quote provider. An empty baseURL selects
// the production endpoint.
func NewStooqQuotes(baseURL string, client *http.Client) *StooqQuotes {
	if baseURL == "" {
		baseURL = defaultStooqBaseURL
	}
	return &StooqQuotes{baseURL: baseURL, client: client}
}

// Name identifies the provider in logs.
func (s *StooqQuotes) Name() string { return "stooq" }

// stooqCode converts a US ticker to Stooq's naming: lower case, dots to
// dashes, ".us" suffix (BRK.B -> brk-b.us).
func stooqCode(symbol string) string {
	return strings.ReplaceAll(strings.ToLower(symbol), ".", "-") + ".us"
}

// Fetch requests the whole batch in one CSV call; Stooq has no practical
// batch limit for watchlist-sized lists.
func (s *StooqQuotes) Fetch(ctx context.Context, symbols []string) ([]entity.Quote, error) {
	codes := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		codes = append(codes, stooqCode(sym))
	}

	q := url.Values{}
	q.Set("s", strings.Join(codes, ","))
	q.Set("f", "sd2t2ohlc")
	u := fmt.Sprintf("%s/q/l/?%s", s.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(res)

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stooq http %d", res.StatusCode)
	}

	rows, err := parseStooqCSV(res.Body)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Quote, 0, len(symbols))
	for _, sym := range symbols {
		quote := entity.Quote{Symbol: sym}
		if row, ok := rows[stooqCode(sym)]; ok {
			open := parseStooqFloat(row["Open"])
			closePrice := parseStooqFloat(row["Close"])
			quote.Price = closePrice
			if closePrice != nil && open != nil && *open != 0 && *closePrice != 0 {
				change := (*closePrice - *open) / *open * 100
				quote.ChangePct = &change
			}
		}
		out = append(out, quote)
	}
	return out, nil
}

// parseStooqCSV indexes the CSV body by lower-cased symbol column. The
// first record is the header.
func parseStooqCSV(body io.Reader) (map[string]map[string]string, error) {
	r := csv.NewReader(body)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return map[string]map[string]string{}, nil
	}

	header := records[0]
	rows := make(map[string]map[string]string, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		key := strings.ToLower(strings.TrimSpace(row["Symbol"]))
		if key != "" {
			rows[key] = row
		}
	}
	return rows, nil
}

// parseStooqFloat parses a Stooq numeric cell; "" and "-" mean no data.
func parseStooqFloat(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return &v
}
