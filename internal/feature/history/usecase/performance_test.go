package usecase

import (
	"math"
	"testing"
	"time"

	"market_terminal/internal/feature/history/domain/entity"
)

// series builds an ascending daily close series ending the day before now.
func series(end time.Time, closes ...float64) []entity.ClosePoint {
	out := make([]entity.ClosePoint, 0, len(closes))
	for i, c := range closes {
		out = append(out, entity.ClosePoint{
			Date:  end.AddDate(0, 0, i-len(closes)+1),
			Close: c,
		})
	}
	return out
}

func TestChange(t *testing.T) {
	t.Parallel()

	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		closes []entity.ClosePoint
		bdays  int
		want   *float64
	}{
		{
			name:   "five points cannot answer a five-day window",
			closes: series(end, 1, 2, 3, 4, 5),
			bdays:  5,
			want:   nil,
		},
		{
			name:   "six points can",
			closes: series(end, 100, 2, 3, 4, 5, 110),
			bdays:  5,
			want:   ptr(10.0),
		},
		{
			name:   "one-day change",
			closes: series(end, 100, 102),
			bdays:  1,
			want:   ptr(2.0),
		},
		{
			name:   "zero base price",
			closes: series(end, 0, 5),
			bdays:  1,
			want:   nil,
		},
		{
			name:   "empty series",
			closes: nil,
			bdays:  1,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Change(tt.closes, tt.bdays)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Change = %v, want %v", deref(got), deref(tt.want))
			}
			if got != nil && math.Abs(*got-*tt.want) > 1e-9 {
				t.Errorf("Change = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestYearToDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	closes := []entity.ClosePoint{
		{Date: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), Close: 90},
		{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Close: 100},
		{Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Close: 120},
	}

	got := YearToDate(closes, now)
	if got == nil || math.Abs(*got-20.0) > 1e-9 {
		t.Errorf("YTD = %v, want 20.0 (from the first close of the year, not the prior year)", deref(got))
	}
}

func TestYearToDate_NoDataThisYear(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	closes := []entity.ClosePoint{
		{Date: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), Close: 90},
	}

	if got := YearToDate(closes, now); got != nil {
		t.Errorf("expected unknown YTD, got %v", *got)
	}
}

func ptr(v float64) *float64 { return &v }

func deref(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
