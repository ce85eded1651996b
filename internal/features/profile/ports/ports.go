package ports

import (
	"context"

	"portfolio-site/internal/features/profile/domain"
)

// ProfileService defines the primary port for portfolio data.
type ProfileService interface {
	// Get returns the current profile, loading it on first use.
	Get(ctx context.Context) (*domain.Profile, error)
	// Reload re-reads the profile from the repository.
	Reload(ctx context.Context) (*domain.Profile, error)
}

// ProfileRepository defines the secondary port for profile storage.
type ProfileRepository interface {
	Load(ctx context.Context) (*domain.Profile, error)
}
