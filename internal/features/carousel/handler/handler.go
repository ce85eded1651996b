package handler

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/core/server"
	"portfolio-site/internal/features/carousel/domain"
	"portfolio-site/internal/features/carousel/ports"
	"portfolio-site/internal/features/carousel/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const keepAliveInterval = 15 * time.Second

// CarouselHandler handles HTTP requests for carousels.
type CarouselHandler struct {
	service ports.CarouselService
	events  ports.SlideSubscriber
}

// NewCarouselHandler creates a new CarouselHandler.
func NewCarouselHandler(service ports.CarouselService, events ports.SlideSubscriber) *CarouselHandler {
	return &CarouselHandler{
		service: service,
		events:  events,
	}
}

// Register mounts the carousel routes on the router.
func (h *CarouselHandler) Register(r fiber.Router) {
	g := r.Group("/api/carousels")
	g.Get("/", h.ListCarousels)
	g.Get("/:name", h.GetCarousel)
	g.Get("/:name/active", h.GetActive)
	g.Get("/:name/events", h.StreamEvents)
	g.Post("/:name", h.Dispatch)
	g.Post("/:name/next", h.Act(domain.ActionNext))
	g.Post("/:name/prev", h.Act(domain.ActionPrev))
	g.Post("/:name/pause", h.Act(domain.ActionPause))
	g.Post("/:name/resume", h.Act(domain.ActionResume))
	g.Post("/:name/hover/enter", h.Act(domain.ActionHoverEnter))
	g.Post("/:name/hover/leave", h.Act(domain.ActionHoverLeave))
}

// ActionRequest is the body of POST /api/carousels/:name.
type ActionRequest struct {
	// Action is one of next, prev, pause, resume, hover_enter, hover_leave.
	Action string `json:"action"`
}

// ListCarousels handles GET /api/carousels.
// @Summary List carousels
// @Description Returns the names of the carousels served by this instance.
// @Tags Carousel
// @Produce json
// @Success 200 {array} string
// @Router /api/carousels [get]
func (h *CarouselHandler) ListCarousels(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.service.Names())
}

// GetActive handles GET /api/carousels/:name/active.
// @Summary Get the active slide
// @Description Returns the active slide; carousels run by another instance are read from the shared store.
// @Tags Carousel
// @Produce json
// @Param name path string true "Carousel name"
// @Success 200 {object} domain.SlideEvent
// @Failure 404 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /api/carousels/{name}/active [get]
func (h *CarouselHandler) GetActive(c *fiber.Ctx) error {
	event, err := h.service.Active(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(event)
}

// Dispatch handles POST /api/carousels/:name with an action in the body.
// @Summary Drive a carousel by action name
// @Description Applies the named action and returns the new state.
// @Tags Carousel
// @Accept json
// @Produce json
// @Param name path string true "Carousel name"
// @Param action body ActionRequest true "Action"
// @Success 200 {object} domain.State
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Router /api/carousels/{name} [post]
func (h *CarouselHandler) Dispatch(c *fiber.Ctx) error {
	var req ActionRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	action, err := domain.ParseAction(req.Action)
	if err != nil {
		return h.fail(c, err)
	}
	return h.Act(action)(c)
}

// GetCarousel handles GET /api/carousels/:name.
// @Summary Get carousel state
// @Description Returns the active slide, autoplay status and all slides of a carousel.
// @Tags Carousel
// @Produce json
// @Param name path string true "Carousel name"
// @Success 200 {object} domain.State
// @Failure 404 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Router /api/carousels/{name} [get]
func (h *CarouselHandler) GetCarousel(c *fiber.Ctx) error {
	st, err := h.service.State(c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(st)
}

// Act returns the handler for one carousel event.
// @Summary Drive a carousel
// @Description Applies next, prev, pause, resume, hover/enter or hover/leave and returns the new state.
// @Tags Carousel
// @Produce json
// @Param name path string true "Carousel name"
// @Success 200 {object} domain.State
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Router /api/carousels/{name}/next [post]
// @Router /api/carousels/{name}/prev [post]
// @Router /api/carousels/{name}/pause [post]
// @Router /api/carousels/{name}/resume [post]
// @Router /api/carousels/{name}/hover/enter [post]
// @Router /api/carousels/{name}/hover/leave [post]
func (h *CarouselHandler) Act(action domain.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := h.service.Apply(c.Params("name"), action)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(st)
	}
}

// StreamEvents handles GET /api/carousels/:name/events.
// @Summary Stream slide changes
// @Description Server-Sent Events stream; one "slide" event per activation, starting with the current slide.
// @Tags Carousel
// @Produce text/event-stream
// @Param name path string true "Carousel name"
// @Success 200 {object} domain.SlideEvent
// @Failure 404 {object} server.ErrorResponse
// @Router /api/carousels/{name}/events [get]
func (h *CarouselHandler) StreamEvents(c *fiber.Ctx) error {
	name := c.Params("name")

	// Subscribe before the snapshot so no activation falls between them.
	events, cancel := h.events.Subscribe(name)
	st, err := h.service.State(name)
	if err != nil {
		cancel()
		return h.fail(c, err)
	}
	rayID := server.RayID(c)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		log := logger.Named("carousel").With(zap.String("carousel", name), zap.String("ray_id", rayID))
		log.Debug("Slide stream opened")

		if active, ok := st.ActiveSlide(); ok {
			first := domain.SlideEvent{Carousel: name, Index: st.CurrentIndex, Slide: active, At: time.Now()}
			if err := writeEvent(w, first); err != nil || w.Flush() != nil {
				return
			}
		}

		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()

		for {
			select {
			case ev, ok := <-events:
				if !ok {
					log.Debug("Slide stream closed by server")
					return
				}
				if err := writeEvent(w, ev); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					log.Debug("Slide stream closed by client")
					return
				}
			case <-ticker.C:
				if _, err := io.WriteString(w, ": ping\n\n"); err != nil || w.Flush() != nil {
					return
				}
			}
		}
	}))

	return nil
}

// writeEvent encodes ev as one SSE "slide" message.
func writeEvent(w io.Writer, ev domain.SlideEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: slide\nid: %d\ndata: %s\n\n", ev.Index, data)
	return err
}

func (h *CarouselHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCarouselNotFound):
		return server.Fail(c, fiber.StatusNotFound, "carousel not found")
	case errors.Is(err, domain.ErrNotInitialized):
		return server.Fail(c, fiber.StatusConflict, "carousel not initialized")
	case errors.Is(err, domain.ErrUnknownAction):
		return server.Fail(c, fiber.StatusBadRequest, err.Error())
	}
	logger.Named("carousel").Error("Carousel request failed", zap.Error(err))
	return server.Fail(c, fiber.StatusInternalServerError, "Internal server error")
}
