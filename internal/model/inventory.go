package model

import "github.com/google/uuid"

// Inventory is the per (product, location) quantity counter. Rows are
// materialized lazily on the first adjustment that touches the pair.
// Quantity has no lower bound; negative on-hand is accepted and read as
// backorder.
type Inventory struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_product_location" json:"product_id"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_product_location" json:"location_id"`
	Quantity   int       `gorm:"not null;default:0" json:"quantity"`

	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// TableName keeps the original singular table name.
func (Inventory) TableName() string { return "inventory" }

// StockAdjustment is one immutable ledger entry. The invariant
// QuantityAfter == QuantityBefore + QuantityChange holds for every row.
type StockAdjustment struct {
	BaseModel
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	LocationID      uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id" validate:"uuid_required"`
	AdjustmentType  string    `gorm:"type:varchar(50);not null" json:"adjustment_type" validate:"required"`
	QuantityChange  int       `gorm:"not null" json:"quantity_change"`
	QuantityBefore  int       `gorm:"not null" json:"quantity_before"`
	QuantityAfter   int       `gorm:"not null" json:"quantity_after"`
	Reason          string    `gorm:"type:text" json:"reason"`
	ReferenceNumber string    `gorm:"type:varchar(100)" json:"reference_number"`
	AdjustedBy      uuid.UUID `gorm:"type:uuid;not null" json:"adjusted_by"`

	AdjustedByUser *User     `gorm:"foreignKey:AdjustedBy" json:"adjusted_by_user,omitempty"`
	Location       *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}
