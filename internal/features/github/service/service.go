package service

import (
	"context"
	"strings"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/github/domain"
	"portfolio-site/internal/features/github/ports"

	"go.uber.org/zap"
)

// GitHubServiceImpl implements ports.GitHubService.
type GitHubServiceImpl struct {
	provider        ports.CardProvider
	defaultUsername string
}

// NewGitHubService creates a new GitHubServiceImpl. defaultUsername is used
// when a request names no user.
func NewGitHubService(provider ports.CardProvider, defaultUsername string) *GitHubServiceImpl {
	return &GitHubServiceImpl{
		provider:        provider,
		defaultUsername: strings.TrimSpace(defaultUsername),
	}
}

// Card returns the profile card for username or the default user.
func (s *GitHubServiceImpl) Card(ctx context.Context, username string) (*domain.Card, error) {
	username, err := s.resolve(username)
	if err != nil {
		return nil, err
	}
	return s.provider.GetCard(ctx, username)
}

// Refresh invalidates the stored card, when the provider keeps one, and
// fetches it again. A failed invalidation is logged and the fetch still runs.
func (s *GitHubServiceImpl) Refresh(ctx context.Context, username string) (*domain.Card, error) {
	username, err := s.resolve(username)
	if err != nil {
		return nil, err
	}
	if inv, ok := s.provider.(ports.CardInvalidator); ok {
		if err := inv.Invalidate(ctx, username); err != nil {
			logger.Named("github").Warn("Failed to invalidate card", zap.String("username", username), zap.Error(err))
		}
	}
	return s.provider.GetCard(ctx, username)
}

func (s *GitHubServiceImpl) resolve(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		username = s.defaultUsername
	}
	if username == "" {
		return "", domain.ErrUsernameRequired
	}
	return username, nil
}
