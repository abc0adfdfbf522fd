package repository

import (
	"context"
	"fmt"
	"sync"
)

// quotaKVStore caps the total size of all entries, counted as
// len(key)+len(value), the way a browser's local storage caps an origin.
// Sizes are measured once on first write and then tracked per Set and Remove,
// so writes that bypass this wrapper are not accounted for.
type quotaKVStore struct {
	inner KVStore
	limit int64

	mu    sync.Mutex
	sizes map[string]int64 // nil until measured
	used  int64
}

// NewQuotaKVStore wraps inner so that any write pushing the total size past
// limit bytes fails with ErrQuotaExceeded. A non-positive limit disables the cap.
func NewQuotaKVStore(inner KVStore, limit int64) KVStore {
	if limit <= 0 {
		return inner
	}
	return &quotaKVStore{inner: inner, limit: limit}
}

func (s *quotaKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, key)
}

func (s *quotaKVStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.measure(ctx); err != nil {
		return err
	}
	size := int64(len(key) + len(value))
	others := s.used - s.sizes[key]
	if others+size > s.limit {
		return fmt.Errorf("set %q (%d bytes, %d of %d in use): %w", key, len(value), others, s.limit, ErrQuotaExceeded)
	}
	if err := s.inner.Set(ctx, key, value); err != nil {
		return err
	}
	s.sizes[key] = size
	s.used = others + size
	return nil
}

func (s *quotaKVStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inner.Remove(ctx, key); err != nil {
		return err
	}
	if s.sizes != nil {
		s.used -= s.sizes[key]
		delete(s.sizes, key)
	}
	return nil
}

func (s *quotaKVStore) Keys(ctx context.Context) ([]string, error) {
	return s.inner.Keys(ctx)
}

// measure loads the size of every existing entry. It runs once; a failed
// attempt is retried on the next write.
func (s *quotaKVStore) measure(ctx context.Context) error {
	if s.sizes != nil {
		return nil
	}
	keys, err := s.inner.Keys(ctx)
	if err != nil {
		return fmt.Errorf("measure usage: %w", err)
	}
	sizes := make(map[string]int64, len(keys))
	var total int64
	for _, key := range keys {
		value, ok, err := s.inner.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("measure usage of %q: %w", key, err)
		}
		if ok {
			sizes[key] = int64(len(key) + len(value))
			total += sizes[key]
		}
	}
	s.sizes, s.used = sizes, total
	return nil
}
