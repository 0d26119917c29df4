package rss

import (
	"strings"

	"github.com/dashkit/backend/internal/auth/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	repo FeedRepository
}

func NewHandler(repo FeedRepository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes mounts the feed endpoints behind the supplied
// authorization middleware.
func RegisterRoutes(app *fiber.App, h *Handler, requireAuth fiber.Handler) {
	feeds := app.Group("/api/rss-feeds", requireAuth)
	feeds.Get("", h.ListFeeds)
	feeds.Post("", h.AddFeed)
	feeds.Delete("", h.RemoveFeed)
}

type feedInput struct {
	URL string `json:"url"`
}

func (h *Handler) ListFeeds(c *fiber.Ctx) error {
	claims, ok := handler.ClaimsFromCtx(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	urls, err := h.repo.ListURLsByUserID(c.Context(), claims.Subject)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if urls == nil {
		urls = []string{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"feeds":   urls,
	})
}

func (h *Handler) AddFeed(c *fiber.Ctx) error {
	claims, ok := handler.ClaimsFromCtx(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	url, ok := parseFeedURL(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid RSS URL")
	}

	feed := &Feed{
		ID:      uuid.NewString(),
		UserID:  claims.Subject,
		FeedURL: url,
	}
	if err := h.repo.Add(c.Context(), feed); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *Handler) RemoveFeed(c *fiber.Ctx) error {
	claims, ok := handler.ClaimsFromCtx(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	url, ok := parseFeedURL(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid RSS URL")
	}

	if err := h.repo.Remove(c.Context(), claims.Subject, url); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func parseFeedURL(c *fiber.Ctx) (string, bool) {
	var input feedInput
	if err := c.BodyParser(&input); err != nil {
		return "", false
	}
	url := strings.TrimSpace(input.URL)
	return url, url != ""
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
