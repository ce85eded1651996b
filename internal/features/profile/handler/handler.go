package handler

import (
	"errors"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/core/server"
	"portfolio-site/internal/features/profile/domain"
	"portfolio-site/internal/features/profile/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProfileHandler handles HTTP requests for the portfolio data.
type ProfileHandler struct {
	service ports.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

// CategoryView is an accordion category with its heading.
type CategoryView[T any] struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Items       []T    `json:"items"`
}

// PersonalView adds derived fields to PersonalInfo.
type PersonalView struct {
	domain.PersonalInfo
	FullName string `json:"full_name"`
	MailTo   string `json:"mailto,omitempty"`
}

// MetaView is the head of the page.
type MetaView struct {
	domain.Meta
	Personal PersonalView `json:"personal"`
}

func categories[T any](in []domain.Category[T]) []CategoryView[T] {
	out := make([]CategoryView[T], 0, len(in))
	for _, c := range in {
		out = append(out, CategoryView[T]{Name: c.Name, DisplayName: c.DisplayName(), Items: c.Items})
	}
	return out
}

// Register mounts the profile routes on the router.
func (h *ProfileHandler) Register(r fiber.Router) {
	g := r.Group("/api/profile")
	g.Get("/", h.GetProfile)
	g.Get("/meta", h.view(func(p *domain.Profile) any {
		return MetaView{
			Meta:     p.Meta,
			Personal: PersonalView{PersonalInfo: p.Personal, FullName: p.Personal.FullName(), MailTo: p.Personal.MailTo()},
		}
	}))
	g.Get("/menu", h.view(func(p *domain.Profile) any { return p.Menu() }))
	g.Get("/footer", h.view(func(p *domain.Profile) any { return p.FooterView() }))
	g.Get("/skills", h.view(func(p *domain.Profile) any { return categories(p.Skills) }))
	g.Get("/certifications", h.view(func(p *domain.Profile) any { return categories(p.Certifications) }))
	g.Get("/experience", h.view(func(p *domain.Profile) any { return nonNil(p.Experience) }))
	g.Get("/education", h.view(func(p *domain.Profile) any { return nonNil(p.Education) }))
	g.Get("/testimonials", h.view(func(p *domain.Profile) any { return nonNil(p.Testimonials) }))
	g.Get("/themes", h.view(func(p *domain.Profile) any { return p.Themes() }))
	g.Get("/sections/:key", h.GetSection)
	g.Post("/reload", h.Reload)
}

// GetProfile handles GET /api/profile.
// @Summary Get the portfolio
// @Description Returns the whole portfolio document.
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 500 {object} server.ErrorResponse
// @Router /api/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	p, err := h.service.Get(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(p)
}

// view serves one derived part of the profile.
// @Summary Get a portfolio section
// @Description Returns meta, menu, footer, skills, certifications, experience, education, testimonials or themes.
// @Tags Profile
// @Produce json
// @Success 200 {object} interface{}
// @Failure 500 {object} server.ErrorResponse
// @Router /api/profile/meta [get]
// @Router /api/profile/menu [get]
// @Router /api/profile/footer [get]
// @Router /api/profile/skills [get]
// @Router /api/profile/certifications [get]
// @Router /api/profile/experience [get]
// @Router /api/profile/education [get]
// @Router /api/profile/testimonials [get]
// @Router /api/profile/themes [get]
func (h *ProfileHandler) view(project func(*domain.Profile) any) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := h.service.Get(c.Context())
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(project(p))
	}
}

// GetSection handles GET /api/profile/sections/:key.
// @Summary Get a page section
// @Description Returns the label and container of one page section.
// @Tags Profile
// @Produce json
// @Param key path string true "Section key"
// @Success 200 {object} domain.Section
// @Failure 404 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /api/profile/sections/{key} [get]
func (h *ProfileHandler) GetSection(c *fiber.Ctx) error {
	p, err := h.service.Get(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	s, ok := p.Section(c.Params("key"))
	if !ok {
		return server.Fail(c, fiber.StatusNotFound, "Section not found")
	}
	return c.Status(fiber.StatusOK).JSON(s)
}

// Reload handles POST /api/profile/reload.
// @Summary Reload the portfolio
// @Description Re-reads the portfolio file. The previous data stays in place on failure.
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 422 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /api/profile/reload [post]
func (h *ProfileHandler) Reload(c *fiber.Ctx) error {
	p, err := h.service.Reload(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(p)
}

func (h *ProfileHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidProfile) {
		return server.Fail(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	logger.Get().Error("Profile request failed",
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.Fail(c, fiber.StatusInternalServerError, "Internal server error")
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
