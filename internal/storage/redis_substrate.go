package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// RedisSubstrate stores keys as plain Redis strings under a fixed key prefix.
// With a non-zero ttl every write and read pushes the key's expiry forward,
// which gives session semantics to the ephemeral store.
type RedisSubstrate struct {
	rdb       *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewRedisSubstrate(rdb *redis.Client, keyPrefix string, ttl time.Duration) *RedisSubstrate {
	return &RedisSubstrate{rdb: rdb, keyPrefix: keyPrefix, ttl: ttl}
}

func (r *RedisSubstrate) key(k string) string { return r.keyPrefix + k }

func (r *RedisSubstrate) Set(ctx context.Context, key, value string) error {
	return r.rdb.Set(ctx, r.key(key), value, r.ttl).Err()
}

func (r *RedisSubstrate) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		v   string
		err error
	)
	if r.ttl > 0 {
		v, err = r.rdb.GetEx(ctx, r.key(key), r.ttl).Result()
	} else {
		v, err = r.rdb.Get(ctx, r.key(key)).Result()
	}
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisSubstrate) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.key(key)).Err()
}

func (r *RedisSubstrate) DeletePrefix(ctx context.Context, prefix string) error {
	keys, err := r.scan(ctx, prefix)
	if err != nil {
		return err
	}
	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		if err := r.rdb.Del(ctx, keys[start:end]...).Err(); err != nil {
			return fmt.Errorf("could not delete keys: %w", err)
		}
	}
	return nil
}

func (r *RedisSubstrate) KeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	full, err := r.scan(ctx, prefix)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(full))
	for _, k := range full {
		keys = append(keys, strings.TrimPrefix(k, r.keyPrefix))
	}
	return keys, nil
}

// scan returns full Redis keys (including keyPrefix) starting with prefix.
func (r *RedisSubstrate) scan(ctx context.Context, prefix string) ([]string, error) {
	pattern := escapeGlob(r.keyPrefix+prefix) + "*"
	var keys []string
	iter := r.rdb.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("could not scan keys: %w", err)
	}
	return keys, nil
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string { return globEscaper.Replace(s) }
