package repository

import (
	"github.com/maldura7/clover-inventory-system/internal/model"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(tx *gorm.DB, entry *model.AuditLog) error
}

type auditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) AuditRepository {
	return &auditRepo{db}
}

func (r *auditRepo) Create(tx *gorm.DB, entry *model.AuditLog) error {
	return tx.Create(entry).Error
}
