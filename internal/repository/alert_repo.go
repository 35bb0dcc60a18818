package repository

import (
	"time"

	"github.com/maldura7/clover-inventory-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlertRow joins an alert with product and location names.
type AlertRow struct {
	ID           uuid.UUID `json:"id"`
	AlertType    string    `json:"alert_type"`
	ProductID    uuid.UUID `json:"product_id"`
	LocationID   uuid.UUID `json:"location_id"`
	Message      string    `json:"message"`
	Severity     string    `json:"severity"`
	ProductName  string    `json:"product_name"`
	LocationName string    `json:"location_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type AlertRepository interface {
	FindUnresolved() ([]AlertRow, error)
	UnresolvedExists(tx *gorm.DB, productID, locationID uuid.UUID) (bool, error)
	Create(tx *gorm.DB, alert *model.Alert) error
	Resolve(id uuid.UUID) error
	CountUnresolved() (int64, error)
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepository {
	return &alertRepo{db}
}

func (r *alertRepo) FindUnresolved() ([]AlertRow, error) {
	var rows []AlertRow
	err := r.db.Model(&model.Alert{}).
		Select("alerts.id, alerts.alert_type, alerts.product_id, alerts.location_id, alerts.message, alerts.severity, products.name AS product_name, locations.name AS location_name, alerts.created_at").
		Joins("LEFT JOIN products ON products.id = alerts.product_id").
		Joins("LEFT JOIN locations ON locations.id = alerts.location_id").
		Where("alerts.is_resolved = ?", false).
		Order("alerts.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// UnresolvedExists reports whether the pair already has an open
// low-stock alert. Runs on the caller's transaction.
func (r *alertRepo) UnresolvedExists(tx *gorm.DB, productID, locationID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&model.Alert{}).
		Where("product_id = ? AND location_id = ? AND alert_type = ? AND is_resolved = ?",
			productID, locationID, model.AlertTypeLowStock, false).
		Count(&count).Error
	return count > 0, err
}

func (r *alertRepo) Create(tx *gorm.DB, alert *model.Alert) error {
	return tx.Create(alert).Error
}

func (r *alertRepo) Resolve(id uuid.UUID) error {
	res := r.db.Model(&model.Alert{}).Where("id = ?", id).Update("is_resolved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *alertRepo) CountUnresolved() (int64, error) {
	var count int64
	err := r.db.Model(&model.Alert{}).Where("is_resolved = ?", false).Count(&count).Error
	return count, err
}
