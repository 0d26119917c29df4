package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/auth/login", h.Login)

	app.Get("/api/me", h.RequireAuth, h.Me)

	account := app.Group("/api/account", h.RequireAuth)
	account.Get("/profile", h.GetProfile)
	account.Post("/name", h.UpdateName)
	account.Post("/password", h.UpdatePassword)
}
