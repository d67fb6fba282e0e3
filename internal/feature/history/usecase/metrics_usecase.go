package usecase

import (
	"context"
	"log/slog"
	"time"

	"market_terminal/internal/feature/history/domain/entity"
)

// DefaultHistoryPoints caps how much daily history is fetched; 800 calendar
// rows comfortably cover the 252-trading-day window plus YTD.
const DefaultHistoryPoints = 800

// HistoryRepository abstracts the source of daily close series. Following
// Go convention: interfaces are defined by the consumer (usecase).
type HistoryRepository interface {
	DailyCloses(ctx context.Context, symbol string, maxPoints int) ([]entity.ClosePoint, error)
}

// Metrics is the /api/metrics payload: performance windows plus a short
// company profile.
type Metrics struct {
	Symbol      string      `json:"symbol"`
	Performance Performance `json:"performance"`
	Profile     Profile     `json:"profile"`
}

// MetricsUsecase computes performance windows from historical closes.
type MetricsUsecase struct {
	history HistoryRepository
	now     func() time.Time
}

// NewMetricsUsecase creates a MetricsUsecase.
func NewMetricsUsecase(history HistoryRepository) *MetricsUsecase {
	return &MetricsUsecase{history: history, now: time.Now}
}

// GetMetrics returns best-effort metrics for one symbol. A failed or empty
// history fetch produces all-unknown windows rather than an error; the
// dashboard always gets a renderable payload.
func (u *MetricsUsecase) GetMetrics(ctx context.Context, symbol string) Metrics {
	closes, err := u.history.DailyCloses(ctx, symbol, DefaultHistoryPoints)
	if err != nil {
		slog.Warn("history fetch failed", "symbol", symbol, "error", err)
		closes = nil
	}
	return Metrics{
		Symbol:      symbol,
		Performance: computePerformance(closes, u.now()),
		Profile:     ProfileFor(symbol),
	}
}
