package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"mypage/profilehub/internal/keyedstore"
	"mypage/profilehub/internal/model"
	"mypage/profilehub/internal/relclock"
)

type NewsService interface {
	List(ctx context.Context) ([]NewsView, error)
	Add(ctx context.Context, item model.NewsItem) (NewsView, error)
	Delete(ctx context.Context, id string) error
}

// newsService is a newest-first list whose entries are listed with dates.
type newsService struct {
	list *listService[model.NewsItem]
}

func NewNewsService(store *keyedstore.Store, clock *relclock.Formatter, logger *zap.Logger) NewsService {
	return &newsService{list: &listService[model.NewsItem]{
		items: newCollection(keyedstore.KeyNews, store, logger, nil,
			func(n model.NewsItem) string { return n.ID }),
		clock:   clock,
		prepend: true,
		prepare: func(n *model.NewsItem, id string, now int64) error {
			if err := required("source", n.Source); err != nil {
				return err
			}
			n.Text = strings.TrimSpace(n.Text)
			if n.Text == "" {
				return ErrEmptyText
			}
			if n.Image != "" {
				if err := validURL("image", n.Image); err != nil {
					return err
				}
			}
			n.ID, n.CreatedAt, n.Likes = id, now, 0
			return nil
		},
	}}
}

func (s *newsService) List(ctx context.Context) ([]NewsView, error) {
	items, err := s.list.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.list.clock.Now()
	views := make([]NewsView, len(items))
	for i, n := range items {
		views[i] = NewsView{NewsItem: n, Date: s.list.clock.Format(n.CreatedAt, now)}
	}
	return views, nil
}

func (s *newsService) Add(ctx context.Context, item model.NewsItem) (NewsView, error) {
	added, err := s.list.Add(ctx, item)
	if err != nil {
		return NewsView{}, err
	}
	return NewsView{NewsItem: added, Date: s.list.clock.Since(added.CreatedAt)}, nil
}

func (s *newsService) Delete(ctx context.Context, id string) error {
	return s.list.Delete(ctx, id)
}
