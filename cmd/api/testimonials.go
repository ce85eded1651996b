package main

import (
	"errors"
	"time"

	carouseldomain "portfolio-site/internal/features/carousel/domain"
	carouselservice "portfolio-site/internal/features/carousel/service"
	"portfolio-site/internal/features/profile/domain"
)

const testimonialCarousel = "testimonials"

type carouselRegistry interface {
	Register(name string, slides []*carouseldomain.Slide, interval time.Duration) error
	Remove(name string) error
}

// testimonialSlides builds one slide per testimonial, in profile order.
func testimonialSlides(p *domain.Profile) []*carouseldomain.Slide {
	slides := make([]*carouseldomain.Slide, 0, len(p.Testimonials))
	for _, t := range p.Testimonials {
		slides = append(slides, carouseldomain.NewSlide(t.ID, t))
	}
	return slides
}

// registerTestimonialCarousel replaces the testimonial carousel with one built
// from p. When the new slides are rejected the old carousel is removed, so a
// reload that drops every testimonial does not keep the stale one running.
func registerTestimonialCarousel(r carouselRegistry, p *domain.Profile, interval time.Duration) error {
	err := r.Register(testimonialCarousel, testimonialSlides(p), interval)
	if err == nil {
		return nil
	}
	if rmErr := r.Remove(testimonialCarousel); rmErr != nil && !errors.Is(rmErr, carouselservice.ErrCarouselNotFound) {
		return errors.Join(err, rmErr)
	}
	return err
}
