package model

type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contact_person"`
	Email         string `gorm:"type:varchar(255)" json:"email"`
	Phone         string `gorm:"type:varchar(20)" json:"phone"`
	Address       string `gorm:"type:varchar(255)" json:"address"`
	PaymentTerms  string `gorm:"type:varchar(100)" json:"payment_terms"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
}
