package storage

import (
	"context"
	"log/slog"
	"strings"

	"portfolio-ai/backend/internal/metrics"
)

// RealBackedStore delegates to a Substrate that passed its availability check.
type RealBackedStore struct {
	name   string
	sub    Substrate
	prefix string
}

// NewRealBackedStore wraps sub without checking it. Use New to check first.
func NewRealBackedStore(name string, sub Substrate, namespace string) *RealBackedStore {
	return &RealBackedStore{name: name, sub: sub, prefix: prefixFor(namespace)}
}

func (s *RealBackedStore) fail(op, key string, err error) {
	metrics.StorageFailuresTotal.WithLabelValues(s.name, op).Inc()
	slog.Error("Storage operation failed", "store", s.name, "op", op, "key", key, "error", err)
}

func (s *RealBackedStore) SetItem(ctx context.Context, key string, value any) bool {
	text, err := serialize(value)
	if err != nil {
		s.fail("set", key, err)
		return false
	}
	if err := s.sub.Set(ctx, s.prefix+key, text); err != nil {
		s.fail("set", key, err)
		return false
	}
	return true
}

func (s *RealBackedStore) GetRaw(ctx context.Context, key string) (string, bool) {
	v, found, err := s.sub.Get(ctx, s.prefix+key)
	if err != nil {
		s.fail("get", key, err)
		return "", false
	}
	return v, found
}

func (s *RealBackedStore) GetItem(ctx context.Context, key string, def any) any {
	raw, ok := s.GetRaw(ctx, key)
	if !ok {
		return def
	}
	return decode(raw, def)
}

func (s *RealBackedStore) RemoveItem(ctx context.Context, key string) bool {
	if err := s.sub.Delete(ctx, s.prefix+key); err != nil {
		s.fail("remove", key, err)
		return false
	}
	return true
}

func (s *RealBackedStore) Clear(ctx context.Context) bool {
	if err := s.sub.DeletePrefix(ctx, s.prefix); err != nil {
		s.fail("clear", s.prefix, err)
		return false
	}
	return true
}

func (s *RealBackedStore) HasItem(ctx context.Context, key string) bool {
	_, ok := s.GetRaw(ctx, key)
	return ok
}

func (s *RealBackedStore) Keys(ctx context.Context) []string {
	full, err := s.sub.KeysWithPrefix(ctx, s.prefix)
	if err != nil {
		s.fail("keys", s.prefix, err)
		return []string{}
	}
	keys := make([]string, 0, len(full))
	for _, k := range full {
		if k == availabilityKey {
			continue
		}
		keys = append(keys, strings.TrimPrefix(k, s.prefix))
	}
	return keys
}

func (s *RealBackedStore) Size(ctx context.Context) int {
	size := 0
	for _, key := range s.Keys(ctx) {
		raw, ok := s.GetRaw(ctx, key)
		if !ok {
			continue
		}
		size += utf16Len(key) + utf16Len(raw)
	}
	return size
}

func (s *RealBackedStore) Available() bool { return true }
