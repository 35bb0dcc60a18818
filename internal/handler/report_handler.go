package handler

import (
	"github.com/maldura7/clover-inventory-system/internal/service"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// InventoryReport renders the report in one of json, csv or xlsx
// GET /api/reports/inventory-report?format=json&locationId=
func (h *ReportHandler) InventoryReport(c *fiber.Ctx) error {
	format := c.Query("format", service.FormatJSON)

	var locationID *uuid.UUID
	if raw := c.Query("locationId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return apperr.Validation("Invalid location ID")
		}
		locationID = &id
	}

	export, err := h.service.InventoryReport(format, locationID)
	if err != nil {
		return err
	}

	if export.Payload == nil {
		return c.JSON(export.Rows)
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return c.Send(export.Payload)
}
