package handler

import (
	"github.com/maldura7/clover-inventory-system/internal/service"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

type PurchaseOrderHandler struct {
	service service.PurchaseOrderService
}

func NewPurchaseOrderHandler(s service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: s}
}

// List returns recent orders joined with supplier and location names
// GET /api/purchase-orders
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.service.List()
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(orders)
}

// Create inserts a draft order and its items; admin/manager only
// POST /api/purchase-orders
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var req service.CreatePurchaseOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	resp, err := h.service.Create(&req, actorID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Purchase order created",
		"poId":     resp.POID,
		"poNumber": resp.PONumber,
	})
}
