// Package memory holds process-local adapters used when the stub server runs without Redis.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"campaignclient/interfaces"
	"campaignclient/service"
)

type entry[T any] struct {
	item      T
	expiresAt time.Time // zero = never
	seq       uint64
}

// store is an in-memory interfaces.EventStore with per-item TTL. Expired items are dropped lazily on access.
type store[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
	seq     uint64
	now     func() time.Time
}

// NewStore returns an empty store; now drives TTL expiry (time.Now in production).
func NewStore[T any](now func() time.Time) interfaces.EventStore[T] {
	return &store[T]{
		entries: make(map[string]entry[T]),
		now:     now,
	}
}

func (s *store[T]) WriteValue(_ context.Context, key string, item T, ttlMs int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	e := entry[T]{item: item, seq: s.seq}
	if ttlMs > 0 {
		e.expiresAt = s.now().Add(time.Duration(ttlMs) * time.Millisecond)
	}
	s.entries[key] = e
	return nil
}

// ListAllValues returns live items in write order.
func (s *store[T]) ListAllValues(_ context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	live := make([]entry[T], 0, len(s.entries))
	for key, e := range s.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(s.entries, key)
			continue
		}
		live = append(live, e)
	}
	if len(live) == 0 {
		return nil, service.NewEntityNotFoundError("no events recorded", nil)
	}
	sortBySeq(live)
	items := make([]T, len(live))
	for i, e := range live {
		items[i] = e.item
	}
	return items, nil
}

func (s *store[T]) DeleteValue(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func sortBySeq[T any](entries []entry[T]) {
	slices.SortFunc(entries, func(a, b entry[T]) int { return cmp.Compare(a.seq, b.seq) })
}
