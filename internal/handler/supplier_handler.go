package handler

import (
	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	repo repository.SupplierRepository
}

func NewSupplierHandler(repo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{repo: repo}
}

type supplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentTerms  string `json:"paymentTerms"`
}

// List returns active suppliers ordered by name
// GET /api/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.repo.FindActive()
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(suppliers)
}

// Create adds a supplier; admin/manager only
// POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req supplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	supplier := &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentTerms:  req.PaymentTerms,
		IsActive:      true,
	}
	if errs := validator.ValidateStruct(supplier); len(errs) > 0 {
		return apperr.Validation("Supplier name is required")
	}

	if err := h.repo.Create(supplier); err != nil {
		return apperr.Internal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Supplier created",
		"supplierId": supplier.ID,
	})
}
