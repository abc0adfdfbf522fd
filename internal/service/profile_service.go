package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"mypage/profilehub/internal/keyedstore"
	"mypage/profilehub/internal/model"
)

type ProfileService interface {
	Get(ctx context.Context) (model.Profile, error)
	Update(ctx context.Context, profile model.Profile) (model.Profile, error)
}

type profileService struct {
	store  *keyedstore.Store
	logger *zap.Logger
	mu     sync.Mutex
}

func NewProfileService(store *keyedstore.Store, logger *zap.Logger) ProfileService {
	return &profileService{store: store, logger: logger.With(zap.String("slice", keyedstore.KeyProfile))}
}

func (s *profileService) Get(ctx context.Context) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := keyedstore.Load(ctx, s.store, keyedstore.KeyProfile, defaultProfile())
	var perr *keyedstore.ParseError
	if errors.As(err, &perr) {
		s.logger.Warn("stored profile is corrupt, using defaults", zap.Error(err))
		return profile, nil
	}
	return profile, err
}

// Update replaces the whole profile, as the edit dialog does.
func (s *profileService) Update(ctx context.Context, profile model.Profile) (model.Profile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return model.Profile{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, keyedstore.KeyProfile, profile); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}
