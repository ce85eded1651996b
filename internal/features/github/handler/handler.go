package handler

import (
	"errors"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/core/server"
	"portfolio-site/internal/features/github/domain"
	"portfolio-site/internal/features/github/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GitHubHandler handles HTTP requests for the GitHub profile card.
type GitHubHandler struct {
	service ports.GitHubService
}

// NewGitHubHandler creates a new GitHubHandler.
func NewGitHubHandler(service ports.GitHubService) *GitHubHandler {
	return &GitHubHandler{
		service: service,
	}
}

// Register mounts the GitHub routes on the router.
func (h *GitHubHandler) Register(r fiber.Router) {
	r.Get("/api/github", h.GetCard)
	r.Get("/api/github/:username", h.GetCard)
	r.Post("/api/github/refresh", h.RefreshCard)
	r.Post("/api/github/:username/refresh", h.RefreshCard)
}

// GetCard handles GET /api/github and GET /api/github/:username.
// @Summary Get a GitHub profile card
// @Description Returns avatar, name, handle and counters for a user; without a username the configured owner is used.
// @Tags GitHub
// @Produce json
// @Param username path string false "GitHub login"
// @Success 200 {object} domain.Card
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/github [get]
// @Router /api/github/{username} [get]
func (h *GitHubHandler) GetCard(c *fiber.Ctx) error {
	username := c.Params("username")

	card, err := h.service.Card(c.Context(), username)
	if err != nil {
		return h.fail(c, username, err)
	}

	c.Set(fiber.HeaderCacheControl, "public, max-age=60")
	return c.Status(fiber.StatusOK).JSON(card)
}

// RefreshCard handles POST /api/github/refresh and POST /api/github/:username/refresh.
// @Summary Refresh a GitHub profile card
// @Description Drops the cached card and fetches it again from GitHub.
// @Tags GitHub
// @Produce json
// @Param username path string false "GitHub login"
// @Success 200 {object} domain.Card
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/github/refresh [post]
// @Router /api/github/{username}/refresh [post]
func (h *GitHubHandler) RefreshCard(c *fiber.Ctx) error {
	username := c.Params("username")

	card, err := h.service.Refresh(c.Context(), username)
	if err != nil {
		return h.fail(c, username, err)
	}
	return c.Status(fiber.StatusOK).JSON(card)
}

func (h *GitHubHandler) fail(c *fiber.Ctx, username string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUsernameRequired):
		return server.Fail(c, fiber.StatusBadRequest, "GitHub username is required")
	case errors.Is(err, domain.ErrUserNotFound):
		return server.Fail(c, fiber.StatusNotFound, "GitHub user not found")
	case errors.Is(err, domain.ErrUpstream):
		logger.Get().Warn("GitHub upstream failed",
			zap.String("username", username),
			zap.String("ray_id", server.RayID(c)),
			zap.Error(err),
		)
		return server.Fail(c, fiber.StatusBadGateway, "GitHub is unavailable")
	}
	logger.Get().Error("Failed to get GitHub card",
		zap.String("username", username),
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.Fail(c, fiber.StatusInternalServerError, "Internal server error")
}
