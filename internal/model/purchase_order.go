package model

import "github.com/google/uuid"

const PurchaseOrderStatusDraft = "draft"

type PurchaseOrder struct {
	BaseModel
	PONumber   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"po_number"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null" json:"supplier_id"`
	LocationID uuid.UUID `gorm:"type:uuid;not null" json:"location_id"`
	Status     string    `gorm:"type:varchar(20);default:'draft'" json:"status"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedByID uuid.UUID `gorm:"type:uuid" json:"created_by_id"`

	Supplier *Supplier           `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Location *Location           `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Items    []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

type PurchaseOrderItem struct {
	BaseModel
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	QuantityOrdered int       `gorm:"not null" json:"quantity_ordered"`
	UnitCost        float64   `gorm:"not null" json:"unit_cost"`
}
