package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"unicode/utf16"

	app_errors "portfolio-ai/backend/internal/errors"
)

const availabilityKey = "__storage_test__"

// Store is the adapter contract. No method returns an error: failures are
// logged, counted, and turned into false/default results.
type Store interface {
	// SetItem stores value under key. Strings are stored verbatim, other
	// values as JSON text.
	SetItem(ctx context.Context, key string, value any) bool
	// GetItem returns the JSON-decoded value, the raw text when it is not
	// valid JSON or def is a string, or def when the key is absent or holds
	// a JSON null.
	GetItem(ctx context.Context, key string, def any) any
	// GetRaw returns the stored text as-is.
	GetRaw(ctx context.Context, key string) (string, bool)
	RemoveItem(ctx context.Context, key string) bool
	// Clear removes every key of this store's namespace and nothing else.
	Clear(ctx context.Context) bool
	HasItem(ctx context.Context, key string) bool
	Keys(ctx context.Context) []string
	// Size approximates the footprint as the UTF-16 length of all keys and values.
	Size(ctx context.Context) int
	// Available reports whether the store writes to its substrate (true) or
	// to the in-memory fallback (false).
	Available() bool
}

// Get reads key into a T. A string T receives the raw text verbatim, so a
// stored "123" reads back as "123" rather than 123. Any other T is decoded
// from JSON; undecodable text yields def.
func Get[T any](ctx context.Context, s Store, key string, def T) T {
	raw, ok := s.GetRaw(ctx, key)
	if !ok {
		return def
	}
	var out T
	if p, isString := any(&out).(*string); isString {
		*p = raw
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slog.Warn("Stored value could not be decoded, using default",
			"key", key, "error", fmt.Errorf("%w: %v", app_errors.ErrSerialization, err))
		return def
	}
	return out
}

// New checks sub once and returns a RealBackedStore when the check passes,
// or an InMemoryStore otherwise. A nil substrate always yields the fallback.
func New(ctx context.Context, name string, sub Substrate, namespace string) Store {
	if err := CheckAvailability(ctx, sub); err != nil {
		slog.Warn("Storage substrate unavailable, using in-memory fallback", "store", name, "error", err)
		return NewInMemoryStore(name)
	}
	return NewRealBackedStore(name, sub, namespace)
}

// CheckAvailability runs a write/read/delete cycle against sub.
func CheckAvailability(ctx context.Context, sub Substrate) error {
	if sub == nil {
		return fmt.Errorf("%w: no substrate configured", app_errors.ErrStorageUnavailable)
	}
	if err := sub.Set(ctx, availabilityKey, "test"); err != nil {
		return fmt.Errorf("%w: availability write: %v", app_errors.ErrStorageUnavailable, err)
	}
	v, found, err := sub.Get(ctx, availabilityKey)
	if err != nil {
		return fmt.Errorf("%w: availability read: %v", app_errors.ErrStorageUnavailable, err)
	}
	if !found || v != "test" {
		return fmt.Errorf("%w: availability read back %q", app_errors.ErrStorageUnavailable, v)
	}
	if err := sub.Delete(ctx, availabilityKey); err != nil {
		return fmt.Errorf("%w: availability delete: %v", app_errors.ErrStorageUnavailable, err)
	}
	return nil
}

func serialize(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", app_errors.ErrSerialization, err)
	}
	return string(b), nil
}

// decode turns stored text back into a value for GetItem. A string default
// asks for the text itself; otherwise JSON text is parsed, non-JSON text is
// returned as is, and a stored JSON null yields def.
func decode(raw string, def any) any {
	if _, wantString := def.(string); wantString {
		return raw
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	if v == nil {
		return def
	}
	return v
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func prefixFor(namespace string) string {
	if namespace == "" {
		return ""
	}
	return namespace + ":"
}
