package handlers

import (
	"strings"

	"phonerdokan/internal/auth"
	applog "phonerdokan/internal/log"
	"phonerdokan/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the bearer credential and stores the decoded email in
// locals. Missing header is 401, bad or expired token is 403.
func RequireAuth(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return jsonError(c, fiber.StatusUnauthorized, "authorization header required")
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header || raw == "" {
			return jsonError(c, fiber.StatusUnauthorized, "authorization must be 'Bearer <token>'")
		}
		email, err := tokens.Verify(raw)
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return jsonError(c, fiber.StatusForbidden, "invalid or expired token")
		}
		c.Locals("email", email)
		return c.Next()
	}
}

// RequireRole gates a route on the principal's CURRENT role, looked up from
// the store on every request. Must run after RequireAuth.
func RequireRole(authz *services.AuthzService, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := CurrentEmail(c)
		if err := authz.Authorize(email, role); err != nil {
			if err == services.ErrForbidden {
				applog.Security(c, "access.denied."+role, map[string]any{"email": email})
				return jsonError(c, fiber.StatusForbidden, "forbidden")
			}
			applog.Error(c, "authz.lookup.fail", err, nil)
			return jsonError(c, fiber.StatusInternalServerError, "could not verify role")
		}
		return c.Next()
	}
}

// CurrentEmail returns the verified email RequireAuth stored for this request.
func CurrentEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
