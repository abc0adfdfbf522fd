package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"mypage/profilehub/internal/keyedstore"
)

// collection is one persisted array slice of the page. Every mutation is a
// load, an in-memory list operation and a full overwrite of the key.
type collection[T any] struct {
	key      string
	store    *keyedstore.Store
	logger   *zap.Logger
	defaults func() []T
	idOf     func(T) string

	mu sync.Mutex
}

func newCollection[T any](key string, store *keyedstore.Store, logger *zap.Logger, defaults func() []T, idOf func(T) string) *collection[T] {
	if defaults == nil {
		defaults = func() []T { return []T{} }
	}
	return &collection[T]{
		key:      key,
		store:    store,
		logger:   logger.With(zap.String("slice", key)),
		defaults: defaults,
		idOf:     idOf,
	}
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	items, err := keyedstore.Load(ctx, c.store, c.key, c.defaults())
	var perr *keyedstore.ParseError
	if errors.As(err, &perr) {
		c.logger.Warn("stored slice is corrupt, using defaults", zap.Error(err))
		err = nil
	}
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) all(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return c.store.Save(ctx, c.key, next)
}

func (c *collection[T]) add(ctx context.Context, item T, prepend bool) error {
	return c.mutate(ctx, func(items []T) ([]T, error) {
		if prepend {
			return append([]T{item}, items...), nil
		}
		return append(items, item), nil
	})
}

// update applies fn to the item with id and returns its new value.
func (c *collection[T]) update(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var updated T
	err := c.mutate(ctx, func(items []T) ([]T, error) {
		i := c.indexOf(items, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		if err := fn(&items[i]); err != nil {
			return nil, err
		}
		updated = items[i]
		return items, nil
	})
	return updated, err
}

func (c *collection[T]) remove(ctx context.Context, id string) error {
	return c.mutate(ctx, func(items []T) ([]T, error) {
		i := c.indexOf(items, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		return append(items[:i:i], items[i+1:]...), nil
	})
}

func (c *collection[T]) indexOf(items []T, id string) int {
	for i, item := range items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}
