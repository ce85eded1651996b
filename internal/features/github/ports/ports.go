package ports

import (
	"context"

	"portfolio-site/internal/features/github/domain"
)

// CardProvider defines the secondary port for fetching GitHub profile cards.
type CardProvider interface {
	GetCard(ctx context.Context, username string) (*domain.Card, error)
}

// CardInvalidator is implemented by providers that keep cards between calls.
type CardInvalidator interface {
	Invalidate(ctx context.Context, username string) error
}

// GitHubService defines the primary port for the profile card.
type GitHubService interface {
	// Card returns the card for username, or for the configured user when empty.
	Card(ctx context.Context, username string) (*domain.Card, error)
	// Refresh drops any stored card and fetches it again.
	Refresh(ctx context.Context, username string) (*domain.Card, error)
}
