package handler

import (
	"github.com/maldura7/clover-inventory-system/internal/service"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// List returns all products with their summed stock
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
		"count":    len(products),
	})
}

// Get returns a single product
// GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return apperr.Validation("Invalid product ID")
	}

	product, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Create adds a catalog product
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	product, err := h.service.Create(&req, actorID(c).String())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      product.ID,
		"message": "Product created",
	})
}

// Update mutates the fields present in the body
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return apperr.Validation("Invalid product ID")
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	if _, err := h.service.Update(id, &req, actorID(c).String()); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product updated"})
}

// Delete removes a product and its inventory rows
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return apperr.Validation("Invalid product ID")
	}

	if err := h.service.Delete(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product deleted"})
}
