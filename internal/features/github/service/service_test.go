package service

import (
	"context"
	"errors"
	"testing"

	"portfolio-site/internal/features/github/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCardProvider is a mock implementation of ports.CardProvider
type MockCardProvider struct {
	mock.Mock
}

func (m *MockCardProvider) GetCard(ctx context.Context, username string) (*domain.Card, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func TestGitHubService_Card(t *testing.T) {
	ctx := context.Background()

	t.Run("ExplicitUsername", func(t *testing.T) {
		provider := new(MockCardProvider)
		svc := NewGitHubService(provider, "adalovelace")
		provider.On("GetCard", ctx, "octocat").Return(&domain.Card{Username: "octocat"}, nil).Once()

		card, err := svc.Card(ctx, " octocat ")
		require.NoError(t, err)
		assert.Equal(t, "octocat", card.Username)
		provider.AssertExpectations(t)
	})

	t.Run("DefaultUsername", func(t *testing.T) {
		provider := new(MockCardProvider)
		svc := NewGitHubService(provider, "adalovelace")
		provider.On("GetCard", ctx, "adalovelace").Return(&domain.Card{Username: "adalovelace"}, nil).Once()

		card, err := svc.Card(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "adalovelace", card.Username)
	})

	t.Run("NoUsername", func(t *testing.T) {
		provider := new(MockCardProvider)
		svc := NewGitHubService(provider, "")

		_, err := svc.Card(ctx, "")
		assert.ErrorIs(t, err, domain.ErrUsernameRequired)
		provider.AssertNotCalled(t, "GetCard", mock.Anything, mock.Anything)
	})

	t.Run("ProviderError", func(t *testing.T) {
		provider := new(MockCardProvider)
		svc := NewGitHubService(provider, "")
		provider.On("GetCard", ctx, "ghost").Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.Card(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

// invalidatingProvider is a card provider that keeps cards, like the Redis cache.
type invalidatingProvider struct {
	MockCardProvider
}

func (m *invalidatingProvider) Invalidate(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func TestGitHubService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidatesThenFetches", func(t *testing.T) {
		provider := new(invalidatingProvider)
		svc := NewGitHubService(provider, "adalovelace")
		var order []string
		provider.On("Invalidate", ctx, "adalovelace").Return(nil).Run(func(mock.Arguments) {
			order = append(order, "invalidate")
		}).Once()
		provider.On("GetCard", ctx, "adalovelace").Return(&domain.Card{Username: "adalovelace"}, nil).Run(func(mock.Arguments) {
			order = append(order, "fetch")
		}).Once()

		card, err := svc.Refresh(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "adalovelace", card.Username)
		assert.Equal(t, []string{"invalidate", "fetch"}, order)
		provider.AssertExpectations(t)
	})

	t.Run("InvalidateErrorStillFetches", func(t *testing.T) {
		provider := new(invalidatingProvider)
		svc := NewGitHubService(provider, "")
		provider.On("Invalidate", ctx, "octocat").Return(errors.New("redis down")).Once()
		provider.On("GetCard", ctx, "octocat").Return(&domain.Card{Username: "octocat"}, nil).Once()

		card, err := svc.Refresh(ctx, "octocat")
		require.NoError(t, err)
		assert.Equal(t, "octocat", card.Username)
		provider.AssertExpectations(t)
	})

	t.Run("ProviderWithoutCache", func(t *testing.T) {
		provider := new(MockCardProvider)
		svc := NewGitHubService(provider, "")
		provider.On("GetCard", ctx, "octocat").Return(&domain.Card{Username: "octocat"}, nil).Once()

		_, err := svc.Refresh(ctx, "octocat")
		require.NoError(t, err)
		provider.AssertExpectations(t)
	})

	t.Run("NoUsername", func(t *testing.T) {
		provider := new(invalidatingProvider)
		svc := NewGitHubService(provider, "")

		_, err := svc.Refresh(ctx, " ")
		assert.ErrorIs(t, err, domain.ErrUsernameRequired)
		provider.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})
}
