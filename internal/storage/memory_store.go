package storage

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"portfolio-ai/backend/internal/metrics"
)

// InMemoryStore is the fallback used when no substrate is available. Its data
// lives as long as the instance does.
type InMemoryStore struct {
	name       string
	mu         sync.RWMutex
	items      map[string]string
	lastAccess time.Time
}

// NewInMemoryStore returns an empty store. Every instance owns a private map,
// so it needs no key prefix.
func NewInMemoryStore(name string) *InMemoryStore {
	return &InMemoryStore{name: name, items: make(map[string]string), lastAccess: time.Now()}
}

func (s *InMemoryStore) touch() { s.lastAccess = time.Now() }

// idleSince reports the last time the store was read or written.
func (s *InMemoryStore) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAccess
}

func (s *InMemoryStore) SetItem(_ context.Context, key string, value any) bool {
	text, err := serialize(value)
	if err != nil {
		metrics.StorageFailuresTotal.WithLabelValues(s.name, "set").Inc()
		slog.Error("Storage operation failed", "store", s.name, "op", "set", "key", key, "error", err)
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = text
	s.touch()
	return true
}

func (s *InMemoryStore) GetRaw(_ context.Context, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	v, ok := s.items[key]
	return v, ok
}

func (s *InMemoryStore) GetItem(ctx context.Context, key string, def any) any {
	raw, ok := s.GetRaw(ctx, key)
	if !ok {
		return def
	}
	return decode(raw, def)
}

func (s *InMemoryStore) RemoveItem(_ context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	s.touch()
	return true
}

func (s *InMemoryStore) Clear(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]string)
	s.touch()
	return true
}

func (s *InMemoryStore) HasItem(ctx context.Context, key string) bool {
	_, ok := s.GetRaw(ctx, key)
	return ok
}

func (s *InMemoryStore) Keys(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *InMemoryStore) Size(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	size := 0
	for k, v := range s.items {
		size += utf16Len(k) + utf16Len(v)
	}
	return size
}

func (s *InMemoryStore) Available() bool { return false }
