// Package cache provides the in-memory snapshot store that backs the
// short-TTL API endpoints.
package cache

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// Policy decides what happens when a refresh fails or comes back empty
// while a previous non-empty payload is still held.
type Policy int

const (
	// Overwrite always stores the refresh result, even an empty one.
	Overwrite Policy = iota
	// KeepStale keeps serving the last good payload instead of replacing
	// it with nothing. The dashboard prefers stale data over a blank page.
	KeepStale
)

// RefreshFunc regenerates the payload for one snapshot key.
type RefreshFunc func(ctx context.Context) (any, error)

// snapshot is one named dataset with the time of its last good refresh.
type snapshot struct {
	ts      time.Time
	payload any
}

// SnapshotStore holds the most recent payload per named dataset. Keys are a
// small fixed set known at startup; entries live for the process lifetime
// and are never evicted.
//
// Concurrent requests for the same stale key may each run the refresh
// function; providers are idempotent reads, so the redundant fetch is
// accepted rather than paying for single-flight coordination.
type SnapshotStore struct {
	policy Policy
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]snapshot
}

// NewSnapshotStore creates an empty store with the given refresh-failure
// policy.
func NewSnapshotStore(policy Policy) *SnapshotStore {
	return &SnapshotStore{
		policy:  policy,
		now:     time.Now,
		entries: make(map[string]snapshot),
	}
}

// GetOrRefresh returns the cached payload for key when it is younger than
// ttl, otherwise runs refresh and stores its result with the current
// timestamp.
//
// The refresh runs outside the store lock so a slow provider cannot block
// lookups of other keys.
func (s *SnapshotStore) GetOrRefresh(ctx context.Context, key string, ttl time.Duration, refresh RefreshFunc) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && !isEmpty(e.payload) && s.now().Sub(e.ts) < ttl {
		s.mu.Unlock()
		return e.payload, nil
	}
	s.mu.Unlock()

	payload, err := refresh(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || isEmpty(payload) {
		if prev, ok := s.entries[key]; ok && !isEmpty(prev.payload) && s.policy == KeepStale {
			// Stale timestamp is left untouched so the next request
			// retries the refresh.
			return prev.payload, nil
		}
	}

	s.entries[key] = snapshot{ts: s.now(), payload: payload}
	return payload, err
}

// isEmpty reports whether a payload counts as "nothing to serve": nil, or a
// zero-length slice or map. Anything else, including zero-valued structs,
// is data.
func isEmpty(payload any) bool {
	if payload == nil {
		return true
	}
	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
