// Package usecase implements historical-performance metrics.
package usecase

import (
	"time"

	"market_terminal/internal/feature/history/domain/entity"
)

// Performance holds percent changes over the standard dashboard windows.
// nil means the series was too short to compute that window.
type Performance struct {
	OneWeek    *float64 `json:"1W"`
	OneMonth   *float64 `json:"1M"`
	ThreeMonth *float64 `json:"3M"`
	SixMonth   *float64 `json:"6M"`
	YearToDate *float64 `json:"YTD"`
	OneYear    *float64 `json:"1Y"`
}

// Trading-day offsets for the fixed windows.
const (
	daysOneWeek    = 5
	daysOneMonth   = 21
	daysThreeMonth = 63
	daysSixMonth   = 126
	daysOneYear    = 252
)

// Change computes the percent change between the close bdays trading days
// ago and the latest close. A window needs bdays+1 points; shorter series
// (or a zero base price) yield nil, never zero.
func Change(closes []entity.ClosePoint, bdays int) *float64 {
	if len(closes) <= bdays {
		return nil
	}
	base := closes[len(closes)-1-bdays].Close
	last := closes[len(closes)-1].Close
	if base == 0 {
		return nil
	}
	v := (last - base) / base * 100
	return &v
}

// YearToDate computes the change from the first available close in now's
// calendar year to the latest close.
func YearToDate(closes []entity.ClosePoint, now time.Time) *float64 {
	if len(closes) == 0 {
		return nil
	}
	year := now.UTC().Year()
	for _, p := range closes {
		if p.Date.Year() == year {
			if p.Close == 0 {
				return nil
			}
			last := closes[len(closes)-1].Close
			v := (last - p.Close) / p.Close * 100
			return &v
		}
	}
	return nil
}

// computePerformance fills every window from one series.
func computePerformance(closes []entity.ClosePoint, now time.Time) Performance {
	return Performance{
		OneWeek:    Change(closes, daysOneWeek),
		OneMonth:   Change(closes, daysOneMonth),
		ThreeMonth: Change(closes, daysThreeMonth),
		SixMonth:   Change(closes, daysSixMonth),
		YearToDate: YearToDate(closes, now),
		OneYear:    Change(closes, daysOneYear),
	}
}
