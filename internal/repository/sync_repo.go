package repository

import (
	"github.com/maldura7/clover-inventory-system/internal/model"

	"gorm.io/gorm"
)

type SyncRepository interface {
	Recent(limit int) ([]model.SyncHistory, error)
	Last() (*model.SyncHistory, error)
	Create(record *model.SyncHistory) error
}

type syncRepo struct {
	db *gorm.DB
}

func NewSyncRepo(db *gorm.DB) SyncRepository {
	return &syncRepo{db}
}

func (r *syncRepo) Recent(limit int) ([]model.SyncHistory, error) {
	var records []model.SyncHistory
	err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

func (r *syncRepo) Last() (*model.SyncHistory, error) {
	var record model.SyncHistory
	if err := r.db.Order("created_at DESC").First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *syncRepo) Create(record *model.SyncHistory) error {
	return r.db.Create(record).Error
}
