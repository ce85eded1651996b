package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio-site/internal/core/cache"
	"portfolio-site/internal/features/carousel/domain"
)

const mirrorTimeout = 2 * time.Second

// RedisMirror implements ports.Renderer by storing the active slide of each
// carousel so other processes can read it.
type RedisMirror struct {
	cache cache.Cache
}

// NewRedisMirror creates a new RedisMirror.
func NewRedisMirror(c cache.Cache) *RedisMirror {
	return &RedisMirror{
		cache: c,
	}
}

func activeKey(carousel string) string {
	return fmt.Sprintf("carousel:%s:active", carousel)
}

// RenderSlide stores the event under carousel:<name>:active without expiry.
func (m *RedisMirror) RenderSlide(event domain.SlideEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal slide event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()

	if err := m.cache.Set(ctx, activeKey(event.Carousel), data, 0); err != nil {
		return fmt.Errorf("failed to mirror active slide: %w", err)
	}
	return nil
}

// Active returns the last mirrored event, or nil when none was stored.
func (m *RedisMirror) Active(ctx context.Context, carousel string) (*domain.SlideEvent, error) {
	data, err := m.cache.Get(ctx, activeKey(carousel))
	if errors.Is(err, cache.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read active slide: %w", err)
	}

	var event domain.SlideEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slide event: %w", err)
	}
	return &event, nil
}

// Clear removes the mirrored slide of a carousel.
func (m *RedisMirror) Clear(ctx context.Context, carousel string) error {
	if err := m.cache.Delete(ctx, activeKey(carousel)); err != nil {
		return fmt.Errorf("failed to clear active slide: %w", err)
	}
	return nil
}
