package handler

import (
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/internal/service"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// List returns inventory joined with product and location names
// GET /api/inventory?locationId=&lowStock=true
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var filter repository.InventoryFilter

	if raw := c.Query("locationId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return apperr.Validation("Invalid location ID")
		}
		filter.LocationID = &id
	}
	filter.LowStock = c.Query("lowStock") == "true"

	rows, err := h.service.List(filter)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(rows)
}

// Adjust applies one quantity change; admin/manager only
// POST /api/inventory/adjust
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var req service.AdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	result, err := h.service.Adjust(&req, actorID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":        "Stock adjusted successfully",
		"quantityBefore": result.QuantityBefore,
		"quantityAfter":  result.QuantityAfter,
	})
}

// History returns the most recent 100 ledger entries for a product
// GET /api/inventory/history/:productId?locationId=
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		return apperr.Validation("Invalid product ID")
	}

	var locationID *uuid.UUID
	if raw := c.Query("locationId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return apperr.Validation("Invalid location ID")
		}
		locationID = &id
	}

	rows, err := h.service.History(productID, locationID)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(rows)
}
