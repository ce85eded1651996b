package ports

import (
	"context"

	"portfolio-site/internal/features/carousel/domain"
)

// Renderer presents a newly activated slide. Each carousel calls it from a
// single goroutine, in activation order.
type Renderer interface {
	RenderSlide(event domain.SlideEvent) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(event domain.SlideEvent) error

// RenderSlide calls f(event).
func (f RendererFunc) RenderSlide(event domain.SlideEvent) error {
	return f(event)
}

// SlideSubscriber streams slide activations of one carousel.
type SlideSubscriber interface {
	// Subscribe returns a channel of events and a function that ends the subscription.
	Subscribe(carousel string) (<-chan domain.SlideEvent, func())
}

// SlideStore is the shared record of each carousel's active slide,
// readable by every process.
type SlideStore interface {
	// Active returns the stored event, or nil when none is stored.
	Active(ctx context.Context, carousel string) (*domain.SlideEvent, error)
	Clear(ctx context.Context, carousel string) error
}

// CarouselService defines the primary port for carousel operations.
type CarouselService interface {
	// Names lists the carousels served by this process.
	Names() []string
	// State returns a snapshot of the named carousel.
	State(name string) (*domain.State, error)
	// Active returns the active slide, from this process or the shared store.
	Active(ctx context.Context, name string) (*domain.SlideEvent, error)
	// Apply runs a host event against the named carousel and returns the resulting state.
	Apply(name string, action domain.Action) (*domain.State, error)
}
