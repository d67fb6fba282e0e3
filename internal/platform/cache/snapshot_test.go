package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeClock drives the store's notion of now without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(policy Policy) (*SnapshotStore, *fakeClock) {
	s := NewSnapshotStore(policy)
	clock := &fakeClock{t: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)}
	s.now = clock.now
	return s, clock
}

// TestSnapshotStore_FreshHit verifies that a second call within the TTL
// returns the identical payload without a second regeneration.
func TestSnapshotStore_FreshHit(t *testing.T) {
	t.Parallel()

	s, clock := newTestStore(Overwrite)
	calls := 0
	refresh := func(ctx context.Context) (any, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	first, err := s.GetOrRefresh(context.Background(), "tickers", 25*time.Second, refresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.advance(10 * time.Second)
	second, err := s.GetOrRefresh(context.Background(), "tickers", 25*time.Second, refresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected 1 refresh, got %d", calls)
	}
	if f, sec := first.([]string), second.([]string); &f[0] != &sec[0] {
		t.Error("expected the identical cached payload on the second call")
	}
}

// TestSnapshotStore_StaleTriggersExactlyOneRefresh verifies that a call
// after the TTL elapsed regenerates exactly once.
func TestSnapshotStore_StaleTriggersExactlyOneRefresh(t *testing.T) {
	t.Parallel()

	s, clock := newTestStore(Overwrite)
	calls := 0
	refresh := func(ctx context.Context) (any, error) {
		calls++
		return []int{calls}, nil
	}

	if _, err := s.GetOrRefresh(context.Background(), "tickers", 25*time.Second, refresh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.advance(26 * time.Second)
	got, err := s.GetOrRefresh(context.Background(), "tickers", 25*time.Second, refresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 2 {
		t.Errorf("expected 2 refreshes total, got %d", calls)
	}
	if got.([]int)[0] != 2 {
		t.Errorf("expected the regenerated payload, got %v", got)
	}
}

// TestSnapshotStore_KeepStale verifies the sticky-cache policy: a failed or
// empty refresh keeps serving the previous payload.
func TestSnapshotStore_KeepStale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		refresh RefreshFunc
	}{
		{
			name: "refresh error",
			refresh: func(ctx context.Context) (any, error) {
				return nil, errors.New("provider down")
			},
		},
		{
			name: "empty result",
			refresh: func(ctx context.Context) (any, error) {
				return []string{}, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, clock := newTestStore(KeepStale)
			good := []string{"headline"}
			if _, err := s.GetOrRefresh(context.Background(), "market_news", time.Second, func(ctx context.Context) (any, error) {
				return good, nil
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			clock.advance(2 * time.Second)
			got, err := s.GetOrRefresh(context.Background(), "market_news", time.Second, tt.refresh)
			if err != nil {
				t.Fatalf("expected stale payload without error, got error: %v", err)
			}
			if got.([]string)[0] != "headline" {
				t.Errorf("expected stale payload, got %v", got)
			}
		})
	}
}

// TestSnapshotStore_Overwrite verifies the opposite policy: an empty
// refresh replaces the previous payload.
func TestSnapshotStore_Overwrite(t *testing.T) {
	t.Parallel()

	s, clock := newTestStore(Overwrite)
	if _, err := s.GetOrRefresh(context.Background(), "market_news", time.Second, func(ctx context.Context) (any, error) {
		return []string{"headline"}, nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.advance(2 * time.Second)
	got, err := s.GetOrRefresh(context.Background(), "market_news", time.Second, func(ctx context.Context) (any, error) {
		return []string{}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.([]string)) != 0 {
		t.Errorf("expected the empty refresh result, got %v", got)
	}
}

// TestSnapshotStore_KeepStaleRetriesNextCall verifies the stale timestamp
// is not refreshed by a failed attempt, so the next call retries.
func TestSnapshotStore_KeepStaleRetriesNextCall(t *testing.T) {
	t.Parallel()

	s, clock := newTestStore(KeepStale)
	if _, err := s.GetOrRefresh(context.Background(), "k", time.Second, func(ctx context.Context) (any, error) {
		return []string{"old"}, nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.advance(2 * time.Second)
	if _, err := s.GetOrRefresh(context.Background(), "k", time.Second, func(ctx context.Context) (any, error) {
		return nil, errors.New("still down")
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Provider recovered; without advancing the clock further the key must
	// still count as stale.
	got, err := s.GetOrRefresh(context.Background(), "k", time.Second, func(ctx context.Context) (any, error) {
		return []string{"new"}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.([]string)[0] != "new" {
		t.Errorf("expected recovered payload, got %v", got)
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var nilSlice []string
	tests := []struct {
		name    string
		payload any
		want    bool
	}{
		{"nil", nil, true},
		{"nil slice", nilSlice, true},
		{"empty slice", []string{}, true},
		{"non-empty slice", []string{"x"}, false},
		{"empty map", map[string]int{}, true},
		{"struct", struct{}{}, false},
	}
	for _, tt := range tests {
		if got := isEmpty(tt.payload); got != tt.want {
			t.Errorf("%s: isEmpty = %v, want %v", tt.name, got, tt.want)
		}
	}
}
