package repository

import (
	"github.com/maldura7/clover-inventory-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductWithStock is a product row plus the summed quantity across all
// locations, for list views.
type ProductWithStock struct {
	model.Product
	TotalStock int `json:"total_stock"`
}

// TopProductRow is a dashboard projection: product plus summed on-hand
// quantity.
type TopProductRow struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SKU        *string   `json:"sku"`
	TotalStock int       `json:"total_stock"`
}

type ProductRepository interface {
	FindAllWithStock() ([]ProductWithStock, error)
	TopByStock(limit int) ([]TopProductRow, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Create(product *model.Product) error
	Update(product *model.Product) error
	DeleteWithInventory(id uuid.UUID) error
	Count() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAllWithStock() ([]ProductWithStock, error) {
	var products []ProductWithStock
	err := r.db.Model(&model.Product{}).
		Select("products.*, COALESCE((SELECT SUM(quantity) FROM inventory WHERE inventory.product_id = products.id AND inventory.deleted_at IS NULL), 0) AS total_stock").
		Order("products.created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) TopByStock(limit int) ([]TopProductRow, error) {
	var rows []TopProductRow
	err := r.db.Model(&model.Product{}).
		Select("products.id, products.name, products.sku, COALESCE(SUM(inventory.quantity), 0) AS total_stock").
		Joins("LEFT JOIN inventory ON inventory.product_id = products.id AND inventory.deleted_at IS NULL").
		Group("products.id").
		Order("total_stock DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// DeleteWithInventory removes the product and every inventory row that
// references it, in one transaction. The cascade lives here, not in the
// schema, mirroring the caller-performed cascade of the write path.
func (r *productRepo) DeleteWithInventory(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.Inventory{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *productRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}
