package adapters

import (
	"sync"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/carousel/domain"

	"go.uber.org/zap"
)

const subscriberBuffer = 16

// Broadcaster fans slide events out to in-process subscribers, e.g. SSE streams.
// It implements both ports.Renderer and ports.SlideSubscriber.
type Broadcaster struct {
	log *zap.Logger

	mu     sync.Mutex
	subs   map[string]map[chan domain.SlideEvent]struct{}
	closed bool
}

// NewBroadcaster creates a new Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		log:  logger.Named("broadcaster"),
		subs: make(map[string]map[chan domain.SlideEvent]struct{}),
	}
}

// RenderSlide delivers the event to every subscriber of its carousel.
// A subscriber whose buffer is full misses the event.
func (b *Broadcaster) RenderSlide(event domain.SlideEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs[event.Carousel] {
		select {
		case ch <- event:
		default:
			b.log.Warn("Dropping slide event for slow subscriber",
				zap.String("carousel", event.Carousel),
				zap.Int("index", event.Index),
			)
		}
	}
	return nil
}

// Subscribe registers a subscriber. The returned cancel function is safe to
// call more than once. After Close the channel is returned already closed.
func (b *Broadcaster) Subscribe(carousel string) (<-chan domain.SlideEvent, func()) {
	ch := make(chan domain.SlideEvent, subscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}

	if b.subs[carousel] == nil {
		b.subs[carousel] = make(map[chan domain.SlideEvent]struct{})
	}
	b.subs[carousel][ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[carousel][ch]; ok {
				delete(b.subs[carousel], ch)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Subscribers returns the number of live subscribers of a carousel.
func (b *Broadcaster) Subscribers(carousel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[carousel])
}

// Close ends every subscription.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for carousel, set := range b.subs {
		for ch := range set {
			close(ch)
		}
		delete(b.subs, carousel)
	}
	b.closed = true
}
