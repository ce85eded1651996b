package service

import (
	"fmt"
	"sync"
	"time"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/carousel/domain"
	"portfolio-site/internal/features/carousel/ports"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	renderQueueSize = 64
	closeTimeout    = 5 * time.Second
)

// Controller owns the rotation state of one carousel: which single slide is
// active, the autoplay timer, and the pause-on-hover behaviour.
//
// Every event (timer fire, navigation, hover) runs to completion under mu, in
// the order it is delivered. A controller holds at most one live timer.
// Activations reach the renderer through a queue drained by one goroutine,
// so a slow renderer never holds mu.
type Controller struct {
	name        string
	clock       clockwork.Clock
	renderer    ports.Renderer
	stickyPause bool
	log         *zap.Logger

	mu          sync.Mutex
	initialized bool
	slides      []*domain.Slide
	current     int
	interval    time.Duration
	timer       clockwork.Timer
	// generation invalidates timer callbacks that were already in flight
	// when their timer was stopped.
	generation uint64
	queue      chan domain.SlideEvent
	drained    chan struct{}
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source. Tests pass a fake clock.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithRenderer sets where slide activations are pushed.
func WithRenderer(renderer ports.Renderer) Option {
	return func(c *Controller) {
		c.renderer = renderer
	}
}

// WithStickyPause keeps a paused carousel paused when the user navigates.
// By default navigation always re-arms autoplay.
func WithStickyPause(sticky bool) Option {
	return func(c *Controller) {
		c.stickyPause = sticky
	}
}

// NewController creates an uninitialized controller.
func NewController(name string, opts ...Option) *Controller {
	c := &Controller{
		name:  name,
		clock: clockwork.NewRealClock(),
		log:   logger.Named("carousel").With(zap.String("carousel", name)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the carousel name.
func (c *Controller) Name() string {
	return c.name
}

// Initialize takes ownership of the slides, activates the first one and
// starts autoplay. Calling it again replaces the slides and restarts at 0.
func (c *Controller) Initialize(slides []*domain.Slide, interval time.Duration) error {
	if len(slides) == 0 {
		return fmt.Errorf("%w: no slides", domain.ErrInvalidConfiguration)
	}
	if interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", domain.ErrInvalidConfiguration, interval)
	}
	for i, s := range slides {
		if s == nil {
			return fmt.Errorf("%w: slide %d is nil", domain.ErrInvalidConfiguration, i)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimerLocked()

	c.slides = slides
	c.interval = interval
	c.current = 0
	for i, s := range c.slides {
		s.Active = i == 0
	}
	c.initialized = true
	c.startRenderingLocked()

	c.log.Info("Carousel initialized",
		zap.Int("slides", len(slides)),
		zap.Duration("interval", interval),
	)

	c.renderLocked()
	c.startTimerLocked()
	return nil
}

// Next activates the following slide, wrapping to the first, and resets autoplay.
func (c *Controller) Next() error {
	return c.step(1)
}

// Prev activates the preceding slide, wrapping to the last, and resets autoplay.
func (c *Controller) Prev() error {
	return c.step(-1)
}

// OnNextClicked handles the next button. Next already restarts the timer,
// so the user's step is not followed by an immediate auto-advance.
func (c *Controller) OnNextClicked() error {
	c.log.Debug("Next button clicked")
	return c.Next()
}

// OnPrevClicked handles the previous button.
func (c *Controller) OnPrevClicked() error {
	c.log.Debug("Previous button clicked")
	return c.Prev()
}

// Pause stops autoplay without touching the active slide. Pausing a paused
// carousel is a no-op.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return domain.ErrNotInitialized
	}
	if c.timer == nil {
		return nil
	}

	c.stopTimerLocked()
	c.log.Debug("Autoplay paused", zap.Int("index", c.current))
	return nil
}

// Resume re-arms autoplay at the configured interval unless it is already running.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return domain.ErrNotInitialized
	}
	if c.timer != nil {
		return nil
	}

	c.startTimerLocked()
	c.log.Debug("Autoplay resumed", zap.Int("index", c.current))
	return nil
}

// OnHoverEnter pauses autoplay while the pointer is over the carousel.
func (c *Controller) OnHoverEnter() error {
	return c.Pause()
}

// OnHoverLeave resumes autoplay when the pointer leaves the carousel.
func (c *Controller) OnHoverLeave() error {
	return c.Resume()
}

// Apply dispatches a host event to the matching operation.
func (c *Controller) Apply(action domain.Action) error {
	switch action {
	case domain.ActionNext:
		return c.OnNextClicked()
	case domain.ActionPrev:
		return c.OnPrevClicked()
	case domain.ActionPause:
		return c.Pause()
	case domain.ActionResume:
		return c.Resume()
	case domain.ActionHoverEnter:
		return c.OnHoverEnter()
	case domain.ActionHoverLeave:
		return c.OnHoverLeave()
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
}

// Running reports whether the autoplay timer is armed.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// State returns a copy of the carousel state.
func (c *Controller) State() (*domain.State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil, domain.ErrNotInitialized
	}

	st := &domain.State{
		Name:         c.name,
		CurrentIndex: c.current,
		Status:       domain.StatusPaused,
		IntervalMs:   c.interval.Milliseconds(),
		Slides:       make([]domain.Slide, len(c.slides)),
	}
	if c.timer != nil {
		st.Status = domain.StatusRunning
	}
	for i, s := range c.slides {
		st.Slides[i] = *s
	}
	return st, nil
}

// Close releases the autoplay timer and waits, up to closeTimeout, for
// queued activations to be rendered. The controller must be initialized
// again before further use.
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopTimerLocked()
	c.initialized = false
	drained := c.stopRenderingLocked()
	c.mu.Unlock()

	if drained == nil {
		return
	}
	select {
	case <-drained:
	case <-time.After(closeTimeout):
		c.log.Warn("Renderer still busy after close", zap.Duration("timeout", closeTimeout))
	}
}

func (c *Controller) step(delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return domain.ErrNotInitialized
	}

	n := len(c.slides)
	c.showLocked((c.current + delta + n) % n)

	if c.stickyPause && c.timer == nil {
		return nil
	}
	c.stopTimerLocked()
	c.startTimerLocked()
	return nil
}

// tick is the autoplay callback. gen pins it to the timer that scheduled it.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || gen != c.generation || c.timer == nil {
		return
	}

	c.timer = nil
	c.showLocked((c.current + 1) % len(c.slides))
	c.startTimerLocked()
}

func (c *Controller) showLocked(index int) {
	c.slides[c.current].Active = false
	c.slides[index].Active = true
	c.current = index
	c.renderLocked()
}

// renderLocked queues the current slide. A full queue drops the event.
func (c *Controller) renderLocked() {
	if c.queue == nil {
		return
	}

	event := domain.SlideEvent{
		Carousel: c.name,
		Index:    c.current,
		Slide:    *c.slides[c.current],
		At:       c.clock.Now(),
	}
	select {
	case c.queue <- event:
	default:
		c.log.Warn("Render queue full, dropping slide", zap.Int("index", c.current))
	}
}

func (c *Controller) startRenderingLocked() {
	if c.renderer == nil || c.queue != nil {
		return
	}
	c.queue = make(chan domain.SlideEvent, renderQueueSize)
	c.drained = make(chan struct{})
	go c.render(c.queue, c.drained)
}

func (c *Controller) stopRenderingLocked() <-chan struct{} {
	if c.queue == nil {
		return nil
	}
	close(c.queue)
	drained := c.drained
	c.queue, c.drained = nil, nil
	return drained
}

func (c *Controller) render(queue <-chan domain.SlideEvent, drained chan<- struct{}) {
	defer close(drained)
	for event := range queue {
		if err := c.renderer.RenderSlide(event); err != nil {
			c.log.Warn("Failed to render slide", zap.Int("index", event.Index), zap.Error(err))
		}
	}
}

func (c *Controller) startTimerLocked() {
	c.generation++
	gen := c.generation
	c.timer = c.clock.AfterFunc(c.interval, func() {
		c.tick(gen)
	})
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}
