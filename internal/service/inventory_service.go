package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/internal/ws"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/pkg/validator"
	"github.com/maldura7/clover-inventory-system/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdjustmentRequest is the body of POST /api/inventory/adjust.
// QuantityChange is a pointer so an explicit 0 is distinguishable from
// a missing field.
type AdjustmentRequest struct {
	ProductID       uuid.UUID `json:"productId" validate:"uuid_required"`
	LocationID      uuid.UUID `json:"locationId" validate:"uuid_required"`
	AdjustmentType  string    `json:"adjustmentType" validate:"required"`
	QuantityChange  *int      `json:"quantityChange" validate:"required"`
	Reason          string    `json:"reason"`
	ReferenceNumber string    `json:"referenceNumber"`
}

// AdjustmentResult reports the quantity transition of one adjustment.
type AdjustmentResult struct {
	QuantityBefore int  `json:"quantityBefore"`
	QuantityAfter  int  `json:"quantityAfter"`
	AlertCreated   bool `json:"alertCreated"`
}

type InventoryService interface {
	List(filter repository.InventoryFilter) ([]repository.InventoryRow, error)
	Adjust(req *AdjustmentRequest, actorID uuid.UUID) (*AdjustmentResult, error)
	History(productID uuid.UUID, locationID *uuid.UUID) ([]repository.AdjustmentRow, error)
}

type inventoryService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	alertRepo     repository.AlertRepository
	auditRepo     repository.AuditRepository
	db            *gorm.DB
	wsHub         *ws.Hub
}

func NewInventoryService(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	alertRepo repository.AlertRepository,
	auditRepo repository.AuditRepository,
	db *gorm.DB,
	hub *ws.Hub,
) InventoryService {
	return &inventoryService{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		alertRepo:     alertRepo,
		auditRepo:     auditRepo,
		db:            db,
		wsHub:         hub,
	}
}

func (s *inventoryService) List(filter repository.InventoryFilter) ([]repository.InventoryRow, error) {
	return s.inventoryRepo.List(filter)
}

// Adjust applies one quantity change to a (product, location) pair.
// Counter update, ledger entry, audit entry and threshold alert all
// commit or roll back together. The quantity change itself runs as a
// server-side increment, so concurrent adjustments never lose updates.
func (s *inventoryService) Adjust(req *AdjustmentRequest, actorID uuid.UUID) (*AdjustmentResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.Validation(fmt.Sprintf("Validation failed: field '%s' failed on '%s'", first.Field, first.Tag))
	}

	delta := *req.QuantityChange
	var result AdjustmentResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			return apperr.NotFound("Product not found")
		}
		var location model.Location
		if err := tx.First(&location, "id = ?", req.LocationID).Error; err != nil {
			return apperr.NotFound("Location not found")
		}

		// Lazy first-touch: the counter row appears on the first
		// adjustment for the pair.
		if err := s.inventoryRepo.Ensure(tx, req.ProductID, req.LocationID); err != nil {
			return err
		}

		if err := s.inventoryRepo.Increment(tx, req.ProductID, req.LocationID, delta); err != nil {
			return err
		}

		inv, err := s.inventoryRepo.Get(tx, req.ProductID, req.LocationID)
		if err != nil {
			return err
		}
		after := inv.Quantity
		before := after - delta

		adj := &model.StockAdjustment{
			ProductID:       req.ProductID,
			LocationID:      req.LocationID,
			AdjustmentType:  req.AdjustmentType,
			QuantityChange:  delta,
			QuantityBefore:  before,
			QuantityAfter:   after,
			Reason:          req.Reason,
			ReferenceNumber: req.ReferenceNumber,
			AdjustedBy:      actorID,
		}
		if err := s.inventoryRepo.CreateAdjustment(tx, adj); err != nil {
			return err
		}

		payload, _ := json.Marshal(map[string]int{
			"quantityChange": delta,
			"quantityAfter":  after,
		})
		audit := &model.AuditLog{
			UserID:   actorID,
			Action:   model.ActionAdjustStock,
			Entity:   "inventory",
			RecordID: inv.ID,
			NewValue: string(payload),
		}
		if err := s.auditRepo.Create(tx, audit); err != nil {
			return err
		}

		// One alert per crossing event. A pair that starts at-or-below
		// the level still gets its first alert, but open alerts are
		// never duplicated while the quantity churns below it.
		raiseAlert := false
		if after <= product.ReorderLevel {
			if before > product.ReorderLevel {
				raiseAlert = true
			} else {
				exists, err := s.alertRepo.UnresolvedExists(tx, req.ProductID, req.LocationID)
				if err != nil {
					return err
				}
				raiseAlert = !exists
			}
		}
		if raiseAlert {
			alert := &model.Alert{
				AlertType:  model.AlertTypeLowStock,
				ProductID:  req.ProductID,
				LocationID: req.LocationID,
				Message:    fmt.Sprintf("%s is low on stock (%d units remaining)", product.Name, after),
				Severity:   model.AlertSeverityHigh,
			}
			if err := s.alertRepo.Create(tx, alert); err != nil {
				return err
			}
			result.AlertCreated = true
		}

		result.QuantityBefore = before
		result.QuantityAfter = after
		return nil
	})
	if err != nil {
		var e *apperr.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, apperr.Internal(err)
	}

	prometheus.AdjustmentsTotal.WithLabelValues(req.AdjustmentType).Inc()
	if result.AlertCreated {
		prometheus.AlertsCreatedTotal.Inc()
	}

	if s.wsHub != nil {
		s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":           "stock_update",
			"productId":      req.ProductID,
			"locationId":     req.LocationID,
			"quantityAfter":  result.QuantityAfter,
			"quantityChange": delta,
			"alertCreated":   result.AlertCreated,
		})
	}

	return &result, nil
}

func (s *inventoryService) History(productID uuid.UUID, locationID *uuid.UUID) ([]repository.AdjustmentRow, error) {
	return s.inventoryRepo.History(productID, locationID, 100)
}
