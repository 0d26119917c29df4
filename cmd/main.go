package main

import (
	"context"
	"log"

	"github.com/dashkit/backend/config"
	"github.com/dashkit/backend/db"
	"github.com/dashkit/backend/internal/auth/handler"
	authrepo "github.com/dashkit/backend/internal/auth/repository/postgres"
	"github.com/dashkit/backend/internal/auth/service"
	"github.com/dashkit/backend/internal/rss"
	rssrepo "github.com/dashkit/backend/internal/rss/repository/postgres"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	userRepo := authrepo.NewUserRepository(pool)
	feedRepo := rssrepo.NewFeedRepository(pool)

	lockout := service.NewLockoutPolicy(cfg.LoginMaxAttempts, cfg.LockoutMinutes)
	userService := service.NewUserService(userRepo, lockout)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryMin)

	authHandler := handler.NewAuthHandler(userService, tokenService)
	rssHandler := rss.NewHandler(feedRepo)

	app := fiber.New()
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowedOrigins}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handler.RegisterRoutes(app, authHandler)
	rss.RegisterRoutes(app, rssHandler, authHandler.RequireAuth)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
