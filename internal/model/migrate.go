package model

// All lists every persisted model in FK-safe creation order, for
// AutoMigrate and test setup.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Location{},
		&Supplier{},
		&Product{},
		&Inventory{},
		&StockAdjustment{},
		&Alert{},
		&AuditLog{},
		&PurchaseOrder{},
		&PurchaseOrderItem{},
		&SyncHistory{},
	}
}
