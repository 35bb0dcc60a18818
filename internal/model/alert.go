package model

import "github.com/google/uuid"

const (
	AlertTypeLowStock = "low_stock"

	AlertSeverityHigh = "high"
)

// Alert is produced when an adjustment leaves the quantity at-or-below
// the product's reorder level and no open low-stock alert exists for
// the pair. Crossing the level from above always raises a fresh one.
type Alert struct {
	BaseModel
	AlertType  string    `gorm:"type:varchar(50);not null" json:"alert_type"`
	ProductID  uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	LocationID uuid.UUID `gorm:"type:uuid;index" json:"location_id"`
	Message    string    `gorm:"type:text" json:"message"`
	Severity   string    `gorm:"type:varchar(20)" json:"severity"`
	IsResolved bool      `gorm:"default:false" json:"is_resolved"`
}
