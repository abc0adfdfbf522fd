package repository

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned by a KVStore when the backing store has no room
// for a write.
var ErrQuotaExceeded = errors.New("kv store quota exceeded")

// KVStore abstracts the string-keyed persistent store the page state lives in.
// Implementations: in-memory, SQLite, Redis, PostgreSQL.
type KVStore interface {
	// Get returns ok=false when key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
