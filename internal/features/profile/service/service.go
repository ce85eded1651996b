package service

import (
	"context"
	"fmt"
	"sync"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/profile/domain"
	"portfolio-site/internal/features/profile/ports"

	"go.uber.org/zap"
)

// ProfileServiceImpl implements ports.ProfileService.
// The profile is loaded once and kept until Reload.
type ProfileServiceImpl struct {
	repo ports.ProfileRepository

	mu       sync.RWMutex
	profile  *domain.Profile
	onReload []func(*domain.Profile)
}

// NewProfileService creates a new ProfileServiceImpl.
func NewProfileService(repo ports.ProfileRepository) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		repo: repo,
	}
}

// OnReload registers fn to run after every successful Reload.
func (s *ProfileServiceImpl) OnReload(fn func(*domain.Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReload = append(s.onReload, fn)
}

// Get returns the cached profile, loading it on first use.
func (s *ProfileServiceImpl) Get(ctx context.Context) (*domain.Profile, error) {
	s.mu.RLock()
	p := s.profile
	s.mu.RUnlock()
	if p != nil {
		return p, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile != nil {
		return s.profile, nil
	}

	p, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load profile: %w", err)
	}
	s.profile = p
	return p, nil
}

// Reload re-reads the profile. On failure the previous profile is kept.
func (s *ProfileServiceImpl) Reload(ctx context.Context) (*domain.Profile, error) {
	p, err := s.repo.Load(ctx)
	if err != nil {
		logger.Named("profile").Warn("Profile reload failed, keeping previous", zap.Error(err))
		return nil, fmt.Errorf("service: failed to reload profile: %w", err)
	}

	s.mu.Lock()
	s.profile = p
	hooks := append(([]func(*domain.Profile))(nil), s.onReload...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(p)
	}
	return p, nil
}
