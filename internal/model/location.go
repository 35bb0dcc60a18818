package model

type Location struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
	City     string `gorm:"type:varchar(100)" json:"city"`
	State    string `gorm:"type:varchar(50)" json:"state"`
	ZipCode  string `gorm:"type:varchar(20)" json:"zip_code"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Email    string `gorm:"type:varchar(255)" json:"email"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
