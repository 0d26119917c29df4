package handler

import (
	"errors"
	"strings"

	"github.com/dashkit/backend/internal/auth/dto"
	"github.com/dashkit/backend/internal/auth/service"
	autherror "github.com/dashkit/backend/internal/errors"
	"github.com/gofiber/fiber/v2"
)

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	user, err := h.userService.Profile(c.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "User not found")
		}
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user": dto.ProfileOutput{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	})
}

func (h *AuthHandler) UpdateName(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	var input dto.UpdateNameInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Please enter a valid name.")
	}
	input.FullName = strings.TrimSpace(input.FullName)
	if err := validate.Struct(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Please enter a valid name.")
	}

	if err := h.userService.UpdateName(c.Context(), claims.Subject, input.FullName); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Name updated successfully.",
	})
}

func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	var input dto.UpdatePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Please complete all fields.")
	}
	if err := validate.Struct(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Please complete all fields.")
	}

	if !service.ValidNewPassword(input.NewPassword) {
		return fail(c, fiber.StatusBadRequest, "Password must be 8+ chars and include a number + symbol.")
	}

	err := h.userService.ChangePassword(c.Context(), claims.Subject, input.OldPassword, input.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrUserNotFound):
			return fail(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, autherror.ErrIncorrectOldPassword):
			return fail(c, fiber.StatusUnauthorized, "Old password is incorrect.")
		default:
			return fail(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Password updated successfully.",
	})
}
