package middleware

import (
	"strings"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Context keys set by RequireAuth.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserRole  = "user_role"
)

// RequireAuth validates the bearer token and stores the caller identity
// in context locals. Whether a route is public is decided at route
// registration, never by comparing request paths here.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperr.Unauthorized("Access token required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return apperr.Unauthorized("Invalid authorization format. Use: Bearer <token>")
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return apperr.Unauthorized("Invalid or expired token")
		}

		role := model.Role(claims.Role)
		if !role.Valid() {
			return apperr.Unauthorized("Invalid or expired token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalUserRole, role)

		return c.Next()
	}
}

// RequireRole allows the request only when the authenticated role is in
// the given set. The 403 body reports both sides of the mismatch.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalUserRole).(model.Role)
		if !ok {
			return apperr.Unauthorized("Unauthorized")
		}

		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}

		required := make([]string, len(roles))
		for i, r := range roles {
			required[i] = r.String()
		}
		return apperr.Forbidden("Insufficient permissions", map[string]interface{}{
			"requiredRoles": required,
			"userRole":      role.String(),
		})
	}
}
