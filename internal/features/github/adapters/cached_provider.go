package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"portfolio-site/internal/core/cache"
	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/github/domain"
	"portfolio-site/internal/features/github/ports"

	"go.uber.org/zap"
)

const cardKeyPrefix = "github:card:"

// CachedProvider decorates a CardProvider with a Redis-backed cache.
// Cache failures are logged and never fail a lookup.
type CachedProvider struct {
	next  ports.CardProvider
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedProvider creates a new CachedProvider.
func NewCachedProvider(next ports.CardProvider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: c,
		ttl:   ttl,
		log:   logger.Named("github"),
	}
}

// CardKey is the cache key for a user's card.
func CardKey(username string) string {
	return cardKeyPrefix + domain.NormalizeUsername(username)
}

// GetCard serves the card from cache, falling through to the provider on a miss.
func (p *CachedProvider) GetCard(ctx context.Context, username string) (*domain.Card, error) {
	if domain.NormalizeUsername(username) == "" {
		return nil, domain.ErrUsernameRequired
	}
	key := CardKey(username)

	data, err := p.cache.Get(ctx, key)
	switch {
	case err == nil:
		var card domain.Card
		jsonErr := json.Unmarshal(data, &card)
		if jsonErr == nil {
			return &card, nil
		}
		p.log.Warn("Discarding corrupt cached card", zap.String("key", key), zap.Error(jsonErr))
	case !errors.Is(err, cache.ErrNotFound):
		p.log.Warn("Card cache read failed", zap.String("key", key), zap.Error(err))
	}

	card, err := p.next.GetCard(ctx, username)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(card)
	if err != nil {
		p.log.Warn("Failed to marshal card", zap.String("key", key), zap.Error(err))
		return card, nil
	}
	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		p.log.Warn("Card cache write failed", zap.String("key", key), zap.Error(err))
	}

	return card, nil
}

// Invalidate drops a cached card.
func (p *CachedProvider) Invalidate(ctx context.Context, username string) error {
	return p.cache.Delete(ctx, CardKey(username))
}
