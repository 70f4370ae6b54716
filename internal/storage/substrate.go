// Package storage implements the key-value store adapter used for everything
// the site persists: chat history, guest counters, preferences, drafts.
//
// A Substrate is the raw backend (SQLite, Redis). A Store wraps a substrate
// with JSON (de)serialization, namespacing and failure recovery: callers of a
// Store always get a value or a boolean, never an error.
package storage

import "context"

// Substrate is the capability set a backend must provide.
// Get reports found=false for absent keys; err is reserved for backend failures.
type Substrate interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	KeysWithPrefix(ctx context.Context, prefix string) ([]string, error)
}
