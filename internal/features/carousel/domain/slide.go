package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidConfiguration is returned when a carousel is initialized with
	// no slides or a non-positive interval.
	ErrInvalidConfiguration = errors.New("invalid carousel configuration")
	// ErrNotInitialized is returned when a carousel is driven before Initialize
	// or after Close.
	ErrNotInitialized = errors.New("carousel not initialized")
	// ErrUnknownAction is returned for an action name that maps to no operation.
	ErrUnknownAction = errors.New("unknown carousel action")
)

// Slide is one unit of carouselled content, e.g. a testimonial.
type Slide struct {
	// ID identifies the slide within its carousel.
	ID string `json:"id"`
	// Active is true for the single slide currently presented.
	Active bool `json:"active"`
	// Content is the opaque payload the page renders.
	Content any `json:"content,omitempty"`
}

// NewSlide creates an inactive slide. An empty id is replaced by a random UUID.
func NewSlide(id string, content any) *Slide {
	if id == "" {
		id = uuid.NewString()
	}
	return &Slide{ID: id, Content: content}
}

// Status is the autoplay state of a carousel.
type Status string

const (
	// StatusRunning means the autoplay timer is armed.
	StatusRunning Status = "RUNNING"
	// StatusPaused means no autoplay timer exists.
	StatusPaused Status = "PAUSED"
)

// State is a point-in-time copy of a carousel.
type State struct {
	Name         string  `json:"name"`
	CurrentIndex int     `json:"current_index"`
	Status       Status  `json:"status"`
	IntervalMs   int64   `json:"interval_ms"`
	Slides       []Slide `json:"slides"`
}

// ActiveSlide returns the slide at CurrentIndex.
func (s State) ActiveSlide() (Slide, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Slides) {
		return Slide{}, false
	}
	return s.Slides[s.CurrentIndex], true
}

// SlideEvent reports that a slide became active.
type SlideEvent struct {
	Carousel string    `json:"carousel"`
	Index    int       `json:"index"`
	Slide    Slide     `json:"slide"`
	At       time.Time `json:"at"`
}

// Action is a host event that drives a carousel.
type Action string

const (
	ActionNext       Action = "next"
	ActionPrev       Action = "prev"
	ActionPause      Action = "pause"
	ActionResume     Action = "resume"
	ActionHoverEnter Action = "hover_enter"
	ActionHoverLeave Action = "hover_leave"
)

// ParseAction validates an action name.
func ParseAction(name string) (Action, error) {
	switch a := Action(name); a {
	case ActionNext, ActionPrev, ActionPause, ActionResume, ActionHoverEnter, ActionHoverLeave:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
