package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health is the liveness probe
// GET /api/health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	database := "connected"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		database = "disconnected"
	}

	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}
