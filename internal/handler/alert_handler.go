package handler

import (
	"errors"

	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AlertHandler struct {
	repo repository.AlertRepository
}

func NewAlertHandler(repo repository.AlertRepository) *AlertHandler {
	return &AlertHandler{repo: repo}
}

// List returns unresolved alerts with product/location names
// GET /api/alerts
func (h *AlertHandler) List(c *fiber.Ctx) error {
	alerts, err := h.repo.FindUnresolved()
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(alerts)
}

// Resolve marks an alert handled; admin/manager only
// PUT /api/alerts/:id/resolve
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return apperr.Validation("Invalid alert ID")
	}

	if err := h.repo.Resolve(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Alert not found")
		}
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"message": "Alert resolved"})
}
