package repository

import (
	"time"

	"github.com/maldura7/clover-inventory-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseOrderRow joins an order with supplier and location names.
type PurchaseOrderRow struct {
	ID           uuid.UUID `json:"id"`
	PONumber     string    `json:"po_number"`
	SupplierID   uuid.UUID `json:"supplier_id"`
	LocationID   uuid.UUID `json:"location_id"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	SupplierName string    `json:"supplier_name"`
	LocationName string    `json:"location_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type PurchaseOrderRepository interface {
	FindRecent(limit int) ([]PurchaseOrderRow, error)
	CreateWithItems(po *model.PurchaseOrder, items []model.PurchaseOrderItem) error
	CountSince(since time.Time) (int64, error)
}

type purchaseOrderRepo struct {
	db *gorm.DB
}

func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db}
}

func (r *purchaseOrderRepo) FindRecent(limit int) ([]PurchaseOrderRow, error) {
	var rows []PurchaseOrderRow
	err := r.db.Model(&model.PurchaseOrder{}).
		Select("purchase_orders.id, purchase_orders.po_number, purchase_orders.supplier_id, purchase_orders.location_id, purchase_orders.status, purchase_orders.notes, suppliers.name AS supplier_name, locations.name AS location_name, purchase_orders.created_at").
		Joins("JOIN suppliers ON suppliers.id = purchase_orders.supplier_id").
		Joins("JOIN locations ON locations.id = purchase_orders.location_id").
		Order("purchase_orders.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CreateWithItems inserts the order and its line items atomically.
func (r *purchaseOrderRepo) CreateWithItems(po *model.PurchaseOrder, items []model.PurchaseOrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(po).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseOrderID = po.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *purchaseOrderRepo) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.PurchaseOrder{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
