package handler

import (
	"github.com/maldura7/clover-inventory-system/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actorID returns the authenticated caller's id from the request
// context. Zero on unauthenticated routes.
func actorID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(middleware.LocalUserID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
