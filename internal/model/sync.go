package model

const (
	SyncTypeExport = "export"
	SyncTypeImport = "import"

	SyncStatusSuccess = "success"
)

// SyncHistory records one synchronization attempt. The Clover
// integration is a stub; no external I/O happens, only this row.
type SyncHistory struct {
	BaseModel
	SyncType    string `gorm:"type:varchar(20);not null" json:"sync_type"`
	Status      string `gorm:"type:varchar(20);not null" json:"status"`
	ItemsSynced int    `gorm:"default:0" json:"items_synced"`
	SyncNotes   string `gorm:"type:text" json:"sync_notes"`
}

func (SyncHistory) TableName() string { return "clover_sync_history" }
