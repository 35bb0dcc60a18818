package handler

import (
	"github.com/maldura7/clover-inventory-system/internal/service"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// Stats returns overview statistics
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(stats)
}

// TopProducts returns the five largest products by on-hand quantity
// GET /api/dashboard/top-products
func (h *DashboardHandler) TopProducts(c *fiber.Ctx) error {
	products, err := h.service.TopProducts()
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(products)
}
