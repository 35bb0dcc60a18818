package service

import (
	"time"

	"github.com/maldura7/clover-inventory-system/internal/repository"
)

// DashboardStats is the overview projection for the dashboard page.
type DashboardStats struct {
	TotalProducts       int64   `json:"totalProducts"`
	TotalInventoryValue float64 `json:"totalInventoryValue"`
	LowStockProducts    int64   `json:"lowStockProducts"`
	ActiveAlerts        int64   `json:"activeAlerts"`
	RecentOrders        int64   `json:"recentOrders"`
}

type DashboardService interface {
	Stats() (*DashboardStats, error)
	TopProducts() ([]repository.TopProductRow, error)
}

type dashboardService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	alertRepo     repository.AlertRepository
	poRepo        repository.PurchaseOrderRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	alertRepo repository.AlertRepository,
	poRepo repository.PurchaseOrderRepository,
) DashboardService {
	return &dashboardService{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		alertRepo:     alertRepo,
		poRepo:        poRepo,
	}
}

func (s *dashboardService) Stats() (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalInventoryValue, err = s.inventoryRepo.TotalValue(); err != nil {
		return nil, err
	}
	if stats.LowStockProducts, err = s.inventoryRepo.LowStockCount(); err != nil {
		return nil, err
	}
	if stats.ActiveAlerts, err = s.alertRepo.CountUnresolved(); err != nil {
		return nil, err
	}
	if stats.RecentOrders, err = s.poRepo.CountSince(time.Now().AddDate(0, 0, -7)); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *dashboardService) TopProducts() ([]repository.TopProductRow, error) {
	return s.productRepo.TopByStock(5)
}
