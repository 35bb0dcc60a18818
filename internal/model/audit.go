package model

import "github.com/google/uuid"

const ActionAdjustStock = "ADJUST_STOCK"

// AuditLog is an append-only record of a mutating operation.
type AuditLog struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Action   string    `gorm:"type:varchar(50);not null" json:"action"`
	Entity   string    `gorm:"column:table_name;type:varchar(50)" json:"table_name"`
	RecordID uuid.UUID `gorm:"type:uuid" json:"record_id"`
	NewValue string    `gorm:"type:text" json:"new_value"` // JSON payload
}

func (AuditLog) TableName() string { return "audit_log" }
