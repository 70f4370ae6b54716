package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// SQLiteSubstrate keeps every key in the kv_store table created by the
// database migrations. It backs the durable store.
type SQLiteSubstrate struct {
	db *sql.DB
}

func NewSQLiteSubstrate(db *sql.DB) *SQLiteSubstrate {
	return &SQLiteSubstrate{db: db}
}

func (s *SQLiteSubstrate) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("could not upsert key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteSubstrate) Get(ctx context.Context, key string) (string, bool, error) {
	query := "SELECT value FROM kv_store WHERE key = ?"
	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("could not read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteSubstrate) Delete(ctx context.Context, key string) error {
	query := "DELETE FROM kv_store WHERE key = ?"
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("could not delete key %q: %w", key, err)
	}
	return nil
}

// DeletePrefix uses substr instead of LIKE so keys containing % or _ need no
// escaping. SQLite's substr counts characters, hence the rune count.
func (s *SQLiteSubstrate) DeletePrefix(ctx context.Context, prefix string) error {
	query := "DELETE FROM kv_store WHERE substr(key, 1, ?) = ?"
	if _, err := s.db.ExecContext(ctx, query, utf8.RuneCountInString(prefix), prefix); err != nil {
		return fmt.Errorf("could not delete prefix %q: %w", prefix, err)
	}
	return nil
}

func (s *SQLiteSubstrate) KeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	query := "SELECT key FROM kv_store WHERE substr(key, 1, ?) = ? ORDER BY key"
	rows, err := s.db.QueryContext(ctx, query, utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("could not list keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
