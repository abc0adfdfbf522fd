package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

type redisKVStore struct {
	client *redis.Client
	prefix string
}

// NewRedisKVStore stores every key as prefix+key so Keys can enumerate the
// namespace without touching foreign data in the same database.
func NewRedisKVStore(client *redis.Client, prefix string) KVStore {
	return &redisKVStore{client: client, prefix: prefix}
}

func (s *redisKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *redisKVStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.client.Set(ctx, s.prefix+key, value, 0).Err()
	if isRedisOOM(err) {
		return fmt.Errorf("set %q: %w: %w", key, err, ErrQuotaExceeded)
	}
	return err
}

func (s *redisKVStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

func (s *redisKVStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// isRedisOOM matches the reply Redis sends once maxmemory is reached and the
// eviction policy cannot free space.
func isRedisOOM(err error) bool {
	var rerr redis.Error
	return errors.As(err, &rerr) && strings.HasPrefix(rerr.Error(), "OOM")
}
