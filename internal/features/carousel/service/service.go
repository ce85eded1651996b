package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/carousel/domain"
	"portfolio-site/internal/features/carousel/ports"

	"go.uber.org/zap"
)

const storeTimeout = 2 * time.Second

// ErrCarouselNotFound is returned when no carousel is registered under a name.
var ErrCarouselNotFound = errors.New("carousel not found")

// CarouselService implements ports.CarouselService over a set of named controllers.
type CarouselService struct {
	store ports.SlideStore
	opts  []Option
	log   *zap.Logger

	mu        sync.RWMutex
	carousels map[string]*Controller
}

// NewCarouselService creates a service whose controllers are built with opts.
// store may be nil; when set, removed carousels are cleared from it and
// Active falls back to it for carousels owned by another process.
func NewCarouselService(store ports.SlideStore, opts ...Option) *CarouselService {
	return &CarouselService{
		store:     store,
		opts:      opts,
		log:       logger.Named("carousel"),
		carousels: make(map[string]*Controller),
	}
}

// Register initializes a controller for the slides and starts its autoplay.
// Registering an existing name replaces the previous carousel.
func (s *CarouselService) Register(name string, slides []*domain.Slide, interval time.Duration) error {
	ctrl := NewController(name, s.opts...)
	if err := ctrl.Initialize(slides, interval); err != nil {
		return fmt.Errorf("service: failed to register carousel %q: %w", name, err)
	}

	s.mu.Lock()
	prev := s.carousels[name]
	s.carousels[name] = ctrl
	s.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	return nil
}

// Names lists the registered carousels in lexical order.
func (s *CarouselService) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.carousels))
	for name := range s.carousels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// State returns a snapshot of the named carousel.
func (s *CarouselService) State(name string) (*domain.State, error) {
	ctrl, err := s.get(name)
	if err != nil {
		return nil, err
	}
	return ctrl.State()
}

// Apply runs a host event against the named carousel.
func (s *CarouselService) Apply(name string, action domain.Action) (*domain.State, error) {
	ctrl, err := s.get(name)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Apply(action); err != nil {
		return nil, err
	}
	return ctrl.State()
}

// Active returns the active slide of a carousel. Carousels of this process
// answer from memory; others are read from the shared store.
func (s *CarouselService) Active(ctx context.Context, name string) (*domain.SlideEvent, error) {
	st, err := s.State(name)
	if err == nil {
		slide, _ := st.ActiveSlide()
		return &domain.SlideEvent{Carousel: name, Index: st.CurrentIndex, Slide: slide, At: time.Now()}, nil
	}
	if !errors.Is(err, ErrCarouselNotFound) || s.store == nil {
		return nil, err
	}

	event, storeErr := s.store.Active(ctx, name)
	if storeErr != nil {
		return nil, fmt.Errorf("service: failed to read active slide of %q: %w", name, storeErr)
	}
	if event == nil {
		return nil, err
	}
	return event, nil
}

// Remove stops a carousel and clears its stored active slide.
func (s *CarouselService) Remove(name string) error {
	s.mu.Lock()
	ctrl, ok := s.carousels[name]
	delete(s.carousels, name)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrCarouselNotFound, name)
	}
	ctrl.Close()
	s.clear(name)
	return nil
}

// Shutdown stops every carousel and clears their stored active slides.
func (s *CarouselService) Shutdown() {
	s.mu.Lock()
	closing := s.carousels
	s.carousels = make(map[string]*Controller)
	s.mu.Unlock()

	for name, ctrl := range closing {
		ctrl.Close()
		s.clear(name)
	}
}

// clear runs after the controller's render queue is drained, so no late
// write can bring the entry back.
func (s *CarouselService) clear(name string) {
	if s.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := s.store.Clear(ctx, name); err != nil {
		s.log.Warn("Failed to clear active slide", zap.String("carousel", name), zap.Error(err))
	}
}

func (s *CarouselService) get(name string) (*Controller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctrl, ok := s.carousels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCarouselNotFound, name)
	}
	return ctrl, nil
}
