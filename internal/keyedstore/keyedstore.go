// Package keyedstore persists page state as JSON blobs in a KVStore.
//
// Load never writes the default back: a key stays absent until the first Save.
// Save recovers from a full store by sweeping every key outside the namespace
// whitelist and retrying once; a second failure drops the write.
package keyedstore

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"go.uber.org/zap"

	"mypage/profilehub/internal/repository"
)

// Keys owned by the page. The eviction sweep never removes them.
const (
	KeyProfile     = "profile"
	KeyPosts       = "posts"
	KeyPhotos      = "photos"
	KeyFriends     = "friends"
	KeyMusic       = "music"
	KeyVideos      = "videos"
	KeyMessages    = "messages"
	KeyCommunities = "communities"
	KeyNews        = "news"
)

var whitelist = map[string]struct{}{
	KeyProfile:     {},
	KeyPosts:       {},
	KeyPhotos:      {},
	KeyFriends:     {},
	KeyMusic:       {},
	KeyVideos:      {},
	KeyMessages:    {},
	KeyCommunities: {},
	KeyNews:        {},
}

// Whitelisted reports whether key belongs to the persistence namespace.
func Whitelisted(key string) bool {
	_, ok := whitelist[key]
	return ok
}

// Namespace returns the whitelisted keys in sorted order.
func Namespace() []string {
	keys := make([]string, 0, len(whitelist))
	for key := range whitelist {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

type Store struct {
	kv     repository.KVStore
	logger *zap.Logger
}

func New(kv repository.KVStore, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger}
}

// Load decodes the value stored under key into a T. An absent key yields def
// untouched. A malformed value yields def and a *ParseError; a backend failure
// yields def and a *StoreError.
func Load[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return def, &StoreError{Op: "load", Key: key, Err: err}
	}
	if !ok {
		return def, nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def, &ParseError{Key: key, Err: err}
	}
	return value, nil
}

// Save overwrites key with the JSON encoding of value.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = s.kv.Set(ctx, key, raw)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrQuotaExceeded) {
		return &StoreError{Op: "save", Key: key, Err: err}
	}

	s.logger.Warn("store quota exceeded, evicting foreign keys",
		zap.String("key", key), zap.Int("bytes", len(raw)), zap.Error(err))

	removed, sweepErr := s.Sweep(ctx)
	if sweepErr != nil {
		s.logger.Warn("eviction sweep incomplete", zap.Error(sweepErr))
	}

	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.logger.Error("dropping write after eviction retry",
			zap.String("key", key), zap.Strings("evicted", removed), zap.Error(err))
		return nil
	}
	s.logger.Info("write succeeded after eviction",
		zap.String("key", key), zap.Strings("evicted", removed))
	return nil
}

// Sweep removes every key that is not whitelisted and returns the ones it
// removed. It keeps going past individual failures and joins them.
func (s *Store) Sweep(ctx context.Context) ([]string, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return nil, &StoreError{Op: "sweep", Err: err}
	}

	var (
		removed []string
		errs    []error
	)
	for _, key := range keys {
		if Whitelisted(key) {
			continue
		}
		if err := s.kv.Remove(ctx, key); err != nil {
			s.logger.Warn("evict key failed", zap.String("key", key), zap.Error(err))
			errs = append(errs, &StoreError{Op: "evict", Key: key, Err: err})
			continue
		}
		removed = append(removed, key)
	}
	return removed, errors.Join(errs...)
}

// Keys lists every key in the underlying store, whitelisted or not.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return nil, &StoreError{Op: "keys", Err: err}
	}
	return keys, nil
}

// Raw returns the stored bytes of key without decoding them.
func (s *Store) Raw(ctx context.Context, key string) ([]byte, bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, false, &StoreError{Op: "load", Key: key, Err: err}
	}
	return raw, ok, nil
}
