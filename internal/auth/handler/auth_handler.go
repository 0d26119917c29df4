package handler

import (
	"errors"

	"github.com/dashkit/backend/internal/auth/dto"
	"github.com/dashkit/backend/internal/auth/service"
	autherror "github.com/dashkit/backend/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AuthHandler struct {
	userService *service.UserService
	tokens      service.TokenCodec
}

func NewAuthHandler(userService *service.UserService, tokens service.TokenCodec) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Email and password are required")
	}
	if err := validate.Struct(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Email and password are required")
	}

	// Metadata for the audit trail.
	input.IPAddress = clientIP(c)
	input.UserAgent = string(c.Request().Header.UserAgent())

	user, err := h.userService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrInvalidCredentials):
			return fail(c, fiber.StatusUnauthorized, "Incorrect email or password")
		case errors.Is(err, autherror.ErrAccountDisabled):
			return fail(c, fiber.StatusUnauthorized, "Account is disabled")
		case errors.Is(err, autherror.ErrAccountLocked):
			return fail(c, fiber.StatusUnauthorized, "Account temporarily locked. Try again later")
		default:
			return fail(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.UserOutput{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

// Me echoes the identity carried by the verified token, without a store
// round trip.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    claims.Subject,
			"email": claims.Email,
			"role":  claims.Role,
		},
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func clientIP(c *fiber.Ctx) string {
	if ip := c.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return c.IP()
}
