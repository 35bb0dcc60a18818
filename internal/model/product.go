package model

type Product struct {
	BaseModel
	SKU             *string `gorm:"type:varchar(50);uniqueIndex" json:"sku"` // unique when present, nullable
	Name            string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description     string  `gorm:"type:text" json:"description"`
	CategoryName    string  `gorm:"type:varchar(100)" json:"category_name"`
	CostPrice       float64 `gorm:"default:0" json:"cost_price"`
	SellingPrice    float64 `gorm:"default:0" json:"selling_price"`
	UnitOfMeasure   string  `gorm:"type:varchar(20);default:'unit'" json:"unit_of_measure"`
	ReorderLevel    int     `gorm:"default:10" json:"reorder_level"`
	ReorderQuantity int     `gorm:"default:50" json:"reorder_quantity"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`
}
