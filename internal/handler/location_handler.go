package handler

import (
	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// LocationHandler works straight off the repository; there is no
// business logic between parsing and storage for locations.
type LocationHandler struct {
	repo repository.LocationRepository
}

func NewLocationHandler(repo repository.LocationRepository) *LocationHandler {
	return &LocationHandler{repo: repo}
}

type locationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// List returns active locations ordered by name
// GET /api/locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations, err := h.repo.FindActive()
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(locations)
}

// Create adds a location; admin only
// POST /api/locations
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	location := &model.Location{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	}
	if errs := validator.ValidateStruct(location); len(errs) > 0 {
		return apperr.Validation("Location name is required")
	}

	if err := h.repo.Create(location); err != nil {
		return apperr.Internal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Location created",
		"locationId": location.ID,
	})
}

// Deactivate soft-retires a location; admin only. Locations are never
// hard-deleted.
// PUT /api/locations/:id/deactivate
func (h *LocationHandler) Deactivate(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return apperr.Validation("Invalid location ID")
	}

	location, err := h.repo.FindByID(id)
	if err != nil {
		return apperr.NotFound("Location not found")
	}

	location.IsActive = false
	if err := h.repo.Update(location); err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"message": "Location deactivated"})
}
