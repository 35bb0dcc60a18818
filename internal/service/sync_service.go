package service

import (
	"errors"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/prometheus"

	"gorm.io/gorm"
)

// SyncService is the Clover synchronization stub. It performs no
// external I/O: every invocation only appends a history row.
type SyncService interface {
	History() ([]model.SyncHistory, error)
	Export() (*model.SyncHistory, error)
	Import() (*model.SyncHistory, error)
	Status() (*model.SyncHistory, error)
}

type syncService struct {
	syncRepo    repository.SyncRepository
	productRepo repository.ProductRepository
}

func NewSyncService(syncRepo repository.SyncRepository, productRepo repository.ProductRepository) SyncService {
	return &syncService{syncRepo: syncRepo, productRepo: productRepo}
}

func (s *syncService) History() ([]model.SyncHistory, error) {
	return s.syncRepo.Recent(20)
}

func (s *syncService) Export() (*model.SyncHistory, error) {
	count, err := s.productRepo.Count()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	record := &model.SyncHistory{
		SyncType:    model.SyncTypeExport,
		Status:      model.SyncStatusSuccess,
		ItemsSynced: int(count),
		SyncNotes:   "Products exported to Clover",
	}
	if err := s.syncRepo.Create(record); err != nil {
		return nil, apperr.Internal(err)
	}

	prometheus.SyncRunsTotal.WithLabelValues(model.SyncTypeExport).Inc()
	return record, nil
}

func (s *syncService) Import() (*model.SyncHistory, error) {
	record := &model.SyncHistory{
		SyncType:    model.SyncTypeImport,
		Status:      model.SyncStatusSuccess,
		ItemsSynced: 0,
		SyncNotes:   "Import started",
	}
	if err := s.syncRepo.Create(record); err != nil {
		return nil, apperr.Internal(err)
	}

	prometheus.SyncRunsTotal.WithLabelValues(model.SyncTypeImport).Inc()
	return record, nil
}

// Status returns the last sync record, or (nil, nil) when there has
// never been one.
func (s *syncService) Status() (*model.SyncHistory, error) {
	record, err := s.syncRepo.Last()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Internal(err)
	}
	return record, nil
}
