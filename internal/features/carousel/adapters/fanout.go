package adapters

import (
	"errors"

	"portfolio-site/internal/features/carousel/domain"
	"portfolio-site/internal/features/carousel/ports"
)

// Fanout renders each event through every renderer in order.
type Fanout []ports.Renderer

// RenderSlide calls every renderer and joins their errors.
func (f Fanout) RenderSlide(event domain.SlideEvent) error {
	var errs []error
	for _, r := range f {
		if err := r.RenderSlide(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
