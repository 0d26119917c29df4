package handler

import (
	"strings"

	"github.com/dashkit/backend/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

const claimsLocalKey = "session_claims"

// RequireAuth gates protected routes: it extracts the bearer token, verifies
// it, and stores the resulting claims for downstream handlers. The rejection
// message does not distinguish expired from tampered tokens.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return fail(c, fiber.StatusUnauthorized, "Authorization token missing")
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	claims, err := h.tokens.Verify(token)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	c.Locals(claimsLocalKey, claims)

	return c.Next()
}

// ClaimsFromCtx returns the claims RequireAuth attached to the request.
func ClaimsFromCtx(c *fiber.Ctx) (*service.SessionClaims, bool) {
	claims, ok := c.Locals(claimsLocalKey).(*service.SessionClaims)
	return claims, ok
}
