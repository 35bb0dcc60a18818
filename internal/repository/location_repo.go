package repository

import (
	"github.com/maldura7/clover-inventory-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository interface {
	FindActive() ([]model.Location, error)
	FindByID(id uuid.UUID) (*model.Location, error)
	Create(location *model.Location) error
	Update(location *model.Location) error
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db}
}

func (r *locationRepo) FindActive() ([]model.Location, error) {
	var locations []model.Location
	err := r.db.Where("is_active = ?", true).Order("name").Find(&locations).Error
	return locations, err
}

func (r *locationRepo) FindByID(id uuid.UUID) (*model.Location, error) {
	var location model.Location
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepo) Create(location *model.Location) error {
	return r.db.Create(location).Error
}

func (r *locationRepo) Update(location *model.Location) error {
	return r.db.Save(location).Error
}
