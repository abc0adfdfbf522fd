package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mypage/profilehub/internal/keyedstore"
	"mypage/profilehub/internal/model"
	"mypage/profilehub/internal/relclock"
)

// ListService covers the slices that only grow, shrink and get listed.
type ListService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Add(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

type listService[T any] struct {
	items *collection[T]
	clock *relclock.Formatter
	// prepare validates a new item and stamps its id and creation time.
	prepare func(item *T, id string, now int64) error
	prepend bool
}

func (s *listService[T]) List(ctx context.Context) ([]T, error) {
	return s.items.all(ctx)
}

func (s *listService[T]) Add(ctx context.Context, item T) (T, error) {
	if err := s.prepare(&item, uuid.NewString(), s.clock.Now()); err != nil {
		var zero T
		return zero, err
	}
	if err := s.items.add(ctx, item, s.prepend); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

func (s *listService[T]) Delete(ctx context.Context, id string) error {
	return s.items.remove(ctx, id)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return nil
}

// validURL accepts absolute http(s) links and data: URIs from uploads.
func validURL(field, value string) error {
	if err := required(field, value); err != nil {
		return err
	}
	if strings.HasPrefix(value, "data:") {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an http(s) or data URL", ErrInvalidInput, field)
	}
	return nil
}

func NewPhotoService(store *keyedstore.Store, clock *relclock.Formatter, logger *zap.Logger) ListService[model.Photo] {
	return &listService[model.Photo]{
		items: newCollection(keyedstore.KeyPhotos, store, logger, nil,
			func(p model.Photo) string { return p.ID }),
		clock: clock,
		prepare: func(p *model.Photo, id string, now int64) error {
			if err := validURL("url", p.URL); err != nil {
				return err
			}
			p.ID, p.CreatedAt = id, now
			return nil
		},
	}
}

func NewFriendService(store *keyedstore.Store, clock *relclock.Formatter, logger *zap.Logger) ListService[model.Friend] {
	return &listService[model.Friend]{
		items: newCollection(keyedstore.KeyFriends, store, logger, defaultFriends,
			func(f model.Friend) string { return f.ID }),
		clock: clock,
		prepare: func(f *model.Friend, id string, _ int64) error {
			if err := required("name", f.Name); err != nil {
				return err
			}
			f.ID = id
			return nil
		},
	}
}

func NewMusicService(store *keyedstore.Store, clock *relclock.Formatter, logger *zap.Logger) ListService[model.Track] {
	return &listService[model.Track]{
		items: newCollection(keyedstore.KeyMusic, store, logger, nil,
			func(t model.Track) string { return t.ID }),
		clock: clock,
		prepare: func(t *model.Track, id string, _ int64) error {
			if err := required("title", t.Title); err != nil {
				return err
			}
			if err := required("artist", t.Artist); err != nil {
				return err
			}
			t.ID = id
			return nil
		},
	}
}

func NewVideoService(store *keyedstore.Store, clock *relclock.Formatter, logger *zap.Logger) ListService[model.Video] {
	return &listService[model.Video]{
		items: newCollection(keyedstore.KeyVideos, store, logger, nil,
			func(v model.Video) string { return v.ID }),
		clock: clock,
		prepare: func(v *model.Video, id string, _ int64) error {
			if err := required("title", v.Title); err != nil {
				return err
			}
			if err := validURL("url", v.URL); err != nil {
				return err
			}
			v.ID = id
			return nil
		},
	}
}

func NewCommunityService(store *keyedstore.Store, clock *relclock.Formatter, logger *zap.Logger) ListService[model.Community] {
	return &listService[model.Community]{
		items: newCollection(keyedstore.KeyCommunities, store, logger, nil,
			func(c model.Community) string { return c.ID }),
		clock: clock,
		prepare: func(c *model.Community, id string, _ int64) error {
			if err := required("name", c.Name); err != nil {
				return err
			}
			if c.Members < 0 {
				return fmt.Errorf("%w: members must not be negative", ErrInvalidInput)
			}
			c.ID = id
			return nil
		},
	}
}
