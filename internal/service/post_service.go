package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mypage/profilehub/internal/keyedstore"
	"mypage/profilehub/internal/model"
	"mypage/profilehub/internal/relclock"
)

type PostService interface {
	List(ctx context.Context) ([]PostView, error)
	Add(ctx context.Context, text, image string) (PostView, error)
	ToggleLike(ctx context.Context, postID string) (PostView, error)
	AddComment(ctx context.Context, postID string, author, avatar, text string) (PostView, error)
	ToggleComments(ctx context.Context, postID string) (PostView, error)
	Delete(ctx context.Context, postID string) error
}

type postService struct {
	posts *collection[model.Post]
	clock *relclock.Formatter
}

func NewPostService(store *keyedstore.Store, clock *relclock.Formatter, logger *zap.Logger) PostService {
	return &postService{
		posts: newCollection(keyedstore.KeyPosts, store, logger,
			func() []model.Post { return defaultPosts(clock.Now()) },
			func(p model.Post) string { return p.ID },
		),
		clock: clock,
	}
}

func (s *postService) List(ctx context.Context) ([]PostView, error) {
	posts, err := s.posts.all(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = postView(p, s.clock, now)
	}
	return views, nil
}

// Add puts a new post on top of the wall.
func (s *postService) Add(ctx context.Context, text, image string) (PostView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return PostView{}, ErrEmptyText
	}
	post := model.Post{
		ID:        uuid.NewString(),
		Text:      text,
		Image:     strings.TrimSpace(image),
		CreatedAt: s.clock.Now(),
		Comments:  []model.Comment{},
	}
	if err := s.posts.add(ctx, post, true); err != nil {
		return PostView{}, err
	}
	return s.view(post), nil
}

func (s *postService) ToggleLike(ctx context.Context, postID string) (PostView, error) {
	post, err := s.posts.update(ctx, postID, func(p *model.Post) error {
		if p.Liked {
			p.Likes--
		} else {
			p.Likes++
		}
		p.Liked = !p.Liked
		return nil
	})
	if err != nil {
		return PostView{}, err
	}
	return s.view(post), nil
}

// AddComment appends a comment and expands the thread.
func (s *postService) AddComment(ctx context.Context, postID string, author, avatar, text string) (PostView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return PostView{}, ErrEmptyText
	}
	author = strings.TrimSpace(author)
	if author == "" {
		return PostView{}, fmt.Errorf("%w: author is required", ErrInvalidInput)
	}

	comment := model.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Avatar:    avatar,
		Text:      text,
		CreatedAt: s.clock.Now(),
	}
	post, err := s.posts.update(ctx, postID, func(p *model.Post) error {
		p.Comments = append(p.Comments, comment)
		p.ShowComments = true
		return nil
	})
	if err != nil {
		return PostView{}, err
	}
	return s.view(post), nil
}

func (s *postService) ToggleComments(ctx context.Context, postID string) (PostView, error) {
	post, err := s.posts.update(ctx, postID, func(p *model.Post) error {
		p.ShowComments = !p.ShowComments
		return nil
	})
	if err != nil {
		return PostView{}, err
	}
	return s.view(post), nil
}

func (s *postService) Delete(ctx context.Context, postID string) error {
	return s.posts.remove(ctx, postID)
}

func (s *postService) view(p model.Post) PostView {
	return postView(p, s.clock, s.clock.Now())
}
