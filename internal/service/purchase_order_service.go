package service

import (
	"fmt"
	"time"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/google/uuid"
)

// PurchaseOrderItemRequest is one line item of a new order.
type PurchaseOrderItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitCost  float64   `json:"unitCost"`
}

// CreatePurchaseOrderRequest is the body of POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID                  `json:"supplierId"`
	LocationID uuid.UUID                  `json:"locationId"`
	Notes      string                     `json:"notes"`
	Items      []PurchaseOrderItemRequest `json:"items"`
}

// CreatePurchaseOrderResponse reports the new order.
type CreatePurchaseOrderResponse struct {
	POID     uuid.UUID `json:"poId"`
	PONumber string    `json:"poNumber"`
}

type PurchaseOrderService interface {
	List() ([]repository.PurchaseOrderRow, error)
	Create(req *CreatePurchaseOrderRequest, actorID uuid.UUID) (*CreatePurchaseOrderResponse, error)
}

type purchaseOrderService struct {
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	locationRepo repository.LocationRepository
}

func NewPurchaseOrderService(
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	locationRepo repository.LocationRepository,
) PurchaseOrderService {
	return &purchaseOrderService{
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		locationRepo: locationRepo,
	}
}

func (s *purchaseOrderService) List() ([]repository.PurchaseOrderRow, error) {
	return s.poRepo.FindRecent(100)
}

// Create validates the referenced supplier and location, then inserts
// the order and its line items in one transaction. New orders always
// start in draft; there is no further status workflow.
func (s *purchaseOrderService) Create(req *CreatePurchaseOrderRequest, actorID uuid.UUID) (*CreatePurchaseOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("At least one line item is required")
	}
	if _, err := s.supplierRepo.FindByID(req.SupplierID); err != nil {
		return nil, apperr.NotFound("Supplier not found")
	}
	if _, err := s.locationRepo.FindByID(req.LocationID); err != nil {
		return nil, apperr.NotFound("Location not found")
	}

	po := &model.PurchaseOrder{
		PONumber:    fmt.Sprintf("PO-%d", time.Now().UnixMilli()),
		SupplierID:  req.SupplierID,
		LocationID:  req.LocationID,
		Status:      model.PurchaseOrderStatusDraft,
		Notes:       req.Notes,
		CreatedByID: actorID,
	}

	items := make([]model.PurchaseOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.PurchaseOrderItem{
			ProductID:       item.ProductID,
			QuantityOrdered: item.Quantity,
			UnitCost:        item.UnitCost,
		}
	}

	if err := s.poRepo.CreateWithItems(po, items); err != nil {
		return nil, apperr.Internal(err)
	}

	return &CreatePurchaseOrderResponse{POID: po.ID, PONumber: po.PONumber}, nil
}
