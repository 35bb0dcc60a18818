package repository

import (
	"time"

	"github.com/maldura7/clover-inventory-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryRow is the joined list view: counter plus product and
// location naming.
type InventoryRow struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	LocationID   uuid.UUID `json:"location_id"`
	Quantity     int       `json:"quantity"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	SKU          *string   `json:"sku"`
	ReorderLevel int       `json:"reorder_level"`
	LocationName string    `json:"location_name"`
}

// AdjustmentRow is one ledger entry joined with adjuster and location
// names for history views.
type AdjustmentRow struct {
	ID              uuid.UUID `json:"id"`
	ProductID       uuid.UUID `json:"product_id"`
	LocationID      uuid.UUID `json:"location_id"`
	AdjustmentType  string    `json:"adjustment_type"`
	QuantityChange  int       `json:"quantity_change"`
	QuantityBefore  int       `json:"quantity_before"`
	QuantityAfter   int       `json:"quantity_after"`
	Reason          string    `json:"reason"`
	ReferenceNumber string    `json:"reference_number"`
	AdjustedBy      uuid.UUID `json:"adjusted_by"`
	AdjustedByName  string    `json:"adjusted_by_name"`
	LocationName    string    `json:"location_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReportRow is the inventory report projection: active products joined
// with their counters and location names.
type ReportRow struct {
	SKU          *string `json:"sku"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	LocationName string  `json:"location_name"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
}

// InventoryFilter narrows the list view.
type InventoryFilter struct {
	LocationID *uuid.UUID
	LowStock   bool
}

type InventoryRepository interface {
	List(filter InventoryFilter) ([]InventoryRow, error)
	Ensure(tx *gorm.DB, productID, locationID uuid.UUID) error
	Increment(tx *gorm.DB, productID, locationID uuid.UUID, delta int) error
	Get(tx *gorm.DB, productID, locationID uuid.UUID) (*model.Inventory, error)
	CreateAdjustment(tx *gorm.DB, adj *model.StockAdjustment) error
	History(productID uuid.UUID, locationID *uuid.UUID, limit int) ([]AdjustmentRow, error)
	ReportRows(locationID *uuid.UUID) ([]ReportRow, error)
	TotalValue() (float64, error)
	LowStockCount() (int64, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) List(filter InventoryFilter) ([]InventoryRow, error) {
	q := r.db.Model(&model.Inventory{}).
		Select("inventory.id, inventory.product_id, inventory.location_id, inventory.quantity, inventory.updated_at, products.name, products.sku, products.reorder_level, locations.name AS location_name").
		Joins("JOIN products ON products.id = inventory.product_id").
		Joins("JOIN locations ON locations.id = inventory.location_id")

	if filter.LocationID != nil {
		q = q.Where("inventory.location_id = ?", *filter.LocationID)
	}
	if filter.LowStock {
		q = q.Where("inventory.quantity <= products.reorder_level")
	}

	var rows []InventoryRow
	err := q.Order("inventory.updated_at DESC").Scan(&rows).Error
	return rows, err
}

// Ensure materializes the (product, location) counter at quantity 0 if
// it does not exist yet. First-touch lazy creation.
func (r *inventoryRepo) Ensure(tx *gorm.DB, productID, locationID uuid.UUID) error {
	inv := model.Inventory{ProductID: productID, LocationID: locationID, Quantity: 0}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "location_id"}},
		DoNothing: true,
	}).Create(&inv).Error
}

// Increment applies the delta inside the database, so concurrent
// adjusters cannot lose each other's updates.
func (r *inventoryRepo) Increment(tx *gorm.DB, productID, locationID uuid.UUID, delta int) error {
	return tx.Model(&model.Inventory{}).
		Where("product_id = ? AND location_id = ?", productID, locationID).
		Updates(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", delta),
		}).Error
}

func (r *inventoryRepo) Get(tx *gorm.DB, productID, locationID uuid.UUID) (*model.Inventory, error) {
	var inv model.Inventory
	err := tx.Where("product_id = ? AND location_id = ?", productID, locationID).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) CreateAdjustment(tx *gorm.DB, adj *model.StockAdjustment) error {
	return tx.Create(adj).Error
}

func (r *inventoryRepo) History(productID uuid.UUID, locationID *uuid.UUID, limit int) ([]AdjustmentRow, error) {
	q := r.db.Model(&model.StockAdjustment{}).
		Select("stock_adjustments.id, stock_adjustments.product_id, stock_adjustments.location_id, stock_adjustments.adjustment_type, stock_adjustments.quantity_change, stock_adjustments.quantity_before, stock_adjustments.quantity_after, stock_adjustments.reason, stock_adjustments.reference_number, stock_adjustments.adjusted_by, users.name AS adjusted_by_name, locations.name AS location_name, stock_adjustments.created_at").
		Joins("JOIN users ON users.id = stock_adjustments.adjusted_by").
		Joins("JOIN locations ON locations.id = stock_adjustments.location_id").
		Where("stock_adjustments.product_id = ?", productID)

	if locationID != nil {
		q = q.Where("stock_adjustments.location_id = ?", *locationID)
	}

	var rows []AdjustmentRow
	err := q.Order("stock_adjustments.created_at DESC").Limit(limit).Scan(&rows).Error
	return rows, err
}

func (r *inventoryRepo) ReportRows(locationID *uuid.UUID) ([]ReportRow, error) {
	q := r.db.Model(&model.Inventory{}).
		Select("products.sku, products.name, inventory.quantity, locations.name AS location_name, products.cost_price, products.selling_price").
		Joins("JOIN products ON products.id = inventory.product_id").
		Joins("JOIN locations ON locations.id = inventory.location_id").
		Where("products.is_active = ?", true)

	if locationID != nil {
		q = q.Where("inventory.location_id = ?", *locationID)
	}

	var rows []ReportRow
	err := q.Order("products.name").Scan(&rows).Error
	return rows, err
}

func (r *inventoryRepo) TotalValue() (float64, error) {
	var value float64
	err := r.db.Model(&model.Inventory{}).
		Joins("JOIN products ON products.id = inventory.product_id").
		Select("COALESCE(SUM(inventory.quantity * products.cost_price), 0)").
		Scan(&value).Error
	return value, err
}

func (r *inventoryRepo) LowStockCount() (int64, error) {
	var count int64
	err := r.db.Model(&model.Inventory{}).
		Joins("JOIN products ON products.id = inventory.product_id").
		Where("inventory.quantity <= products.reorder_level").
		Count(&count).Error
	return count, err
}
