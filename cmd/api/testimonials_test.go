package main

import (
	"testing"
	"time"

	carouseldomain "portfolio-site/internal/features/carousel/domain"
	carouselservice "portfolio-site/internal/features/carousel/service"
	"portfolio-site/internal/features/profile/domain"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialSlides(t *testing.T) {
	p := &domain.Profile{Testimonials: []domain.Testimonial{
		{ID: "babbage", Author: "Charles Babbage"},
		{Author: "Mary Somerville"},
	}}

	slides := testimonialSlides(p)

	require.Len(t, slides, 2)
	assert.Equal(t, "babbage", slides[0].ID)
	assert.NotEmpty(t, slides[1].ID)
	assert.Equal(t, p.Testimonials[1], slides[1].Content)
	assert.False(t, slides[0].Active)
}

func TestRegisterTestimonialCarousel(t *testing.T) {
	svc := carouselservice.NewCarouselService(nil, carouselservice.WithClock(clockwork.NewFakeClock()))
	t.Cleanup(svc.Shutdown)

	p := &domain.Profile{Testimonials: []domain.Testimonial{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	require.NoError(t, registerTestimonialCarousel(svc, p, 5*time.Second))

	st, err := svc.State(testimonialCarousel)
	require.NoError(t, err)
	assert.Equal(t, 0, st.CurrentIndex)
	assert.Equal(t, carouseldomain.StatusRunning, st.Status)
	assert.True(t, st.Slides[0].Active)

}

func TestRegisterTestimonialCarousel_EmptyRemovesStale(t *testing.T) {
	svc := carouselservice.NewCarouselService(nil, carouselservice.WithClock(clockwork.NewFakeClock()))
	t.Cleanup(svc.Shutdown)

	p := &domain.Profile{Testimonials: []domain.Testimonial{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	require.NoError(t, registerTestimonialCarousel(svc, p, 5*time.Second))

	err := registerTestimonialCarousel(svc, &domain.Profile{}, 5*time.Second)
	assert.ErrorIs(t, err, carouseldomain.ErrInvalidConfiguration)

	_, err = svc.State(testimonialCarousel)
	assert.ErrorIs(t, err, carouselservice.ErrCarouselNotFound)
	assert.Empty(t, svc.Names())

	// Nothing registered yet: only the validation error comes back.
	err = registerTestimonialCarousel(svc, &domain.Profile{}, 5*time.Second)
	assert.ErrorIs(t, err, carouseldomain.ErrInvalidConfiguration)
	assert.NotErrorIs(t, err, carouselservice.ErrCarouselNotFound)
}
