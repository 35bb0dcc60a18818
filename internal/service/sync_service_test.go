package service

import (
	"testing"
	"time"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSyncFixture(t *testing.T) SyncService {
	t.Helper()
	db := testutil.OpenDB(t)

	sku := "WID-001"
	require.NoError(t, db.Create(&model.Product{SKU: &sku, Name: "Widget"}).Error)

	return NewSyncService(repository.NewSyncRepo(db), repository.NewProductRepo(db))
}

func TestSyncStatus_EmptyHistory(t *testing.T) {
	svc := newSyncFixture(t)

	record, err := svc.Status()
	require.NoError(t, err)
	assert.Nil(t, record, "no sync has ever run")
}

func TestSyncExport_RecordsHistory(t *testing.T) {
	svc := newSyncFixture(t)

	record, err := svc.Export()
	require.NoError(t, err)
	assert.Equal(t, model.SyncTypeExport, record.SyncType)
	assert.Equal(t, model.SyncStatusSuccess, record.Status)
	assert.Equal(t, 1, record.ItemsSynced)

	last, err := svc.Status()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, record.ID, last.ID)
}

func TestSyncHistory_NewestFirst(t *testing.T) {
	svc := newSyncFixture(t)

	_, err := svc.Export()
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = svc.Import()
	require.NoError(t, err)

	history, err := svc.History()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.SyncTypeImport, history[0].SyncType)
	assert.Equal(t, model.SyncTypeExport, history[1].SyncType)
}
