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

type MessageService interface {
	List(ctx context.Context) ([]MessageView, error)
	// Send records a message. Outgoing messages are stored as already read.
	Send(ctx context.Context, from, avatar, text string, outgoing bool) (MessageView, error)
	MarkRead(ctx context.Context, id string) (MessageView, error)
	Delete(ctx context.Context, id string) error
}

type messageService struct {
	messages *collection[model.Message]
	clock    *relclock.Formatter
}

func NewMessageService(store *keyedstore.Store, clock *relclock.Formatter, logger *zap.Logger) MessageService {
	return &messageService{
		messages: newCollection(keyedstore.KeyMessages, store, logger, nil,
			func(m model.Message) string { return m.ID }),
		clock: clock,
	}
}

func (s *messageService) List(ctx context.Context) ([]MessageView, error) {
	messages, err := s.messages.all(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	views := make([]MessageView, len(messages))
	for i, m := range messages {
		views[i] = MessageView{Message: m, Date: s.clock.Format(m.CreatedAt, now)}
	}
	return views, nil
}

func (s *messageService) Send(ctx context.Context, from, avatar, text string, outgoing bool) (MessageView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return MessageView{}, ErrEmptyText
	}
	from = strings.TrimSpace(from)
	if from == "" {
		return MessageView{}, fmt.Errorf("%w: sender is required", ErrInvalidInput)
	}

	msg := model.Message{
		ID:        uuid.NewString(),
		From:      from,
		Avatar:    avatar,
		Text:      text,
		CreatedAt: s.clock.Now(),
		Outgoing:  outgoing,
		Read:      outgoing,
	}
	if err := s.messages.add(ctx, msg, false); err != nil {
		return MessageView{}, err
	}
	return s.view(msg), nil
}

func (s *messageService) MarkRead(ctx context.Context, id string) (MessageView, error) {
	msg, err := s.messages.update(ctx, id, func(m *model.Message) error {
		m.Read = true
		return nil
	})
	if err != nil {
		return MessageView{}, err
	}
	return s.view(msg), nil
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	return s.messages.remove(ctx, id)
}

func (s *messageService) view(m model.Message) MessageView {
	return MessageView{Message: m, Date: s.clock.Since(m.CreatedAt)}
}
