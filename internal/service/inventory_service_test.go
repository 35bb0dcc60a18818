package service

import (
	"sync"
	"testing"
	"time"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/internal/testutil"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type inventoryFixture struct {
	db       *gorm.DB
	service  InventoryService
	alerts   repository.AlertRepository
	actor    *model.User
	location *model.Location
	product  *model.Product
}

func newInventoryFixture(t *testing.T) *inventoryFixture {
	t.Helper()
	db := testutil.OpenDB(t)

	actor := &model.User{Email: "staff@example.com", Name: "Staff", Role: model.RoleManager}
	require.NoError(t, actor.SetPassword("pw123456"))
	require.NoError(t, db.Create(actor).Error)

	location := &model.Location{Name: "Main Store", City: "New York"}
	require.NoError(t, db.Create(location).Error)

	sku := "WID-001"
	product := &model.Product{
		SKU:          &sku,
		Name:         "Widget",
		CostPrice:    1.0,
		SellingPrice: 2.0,
		ReorderLevel: 5,
	}
	require.NoError(t, db.Create(product).Error)

	alertRepo := repository.NewAlertRepo(db)
	svc := NewInventoryService(
		repository.NewProductRepo(db),
		repository.NewInventoryRepo(db),
		alertRepo,
		repository.NewAuditRepo(db),
		db,
		nil,
	)
	return &inventoryFixture{db: db, service: svc, alerts: alertRepo, actor: actor, location: location, product: product}
}

func (f *inventoryFixture) adjust(t *testing.T, delta int) *AdjustmentResult {
	t.Helper()
	res, err := f.service.Adjust(&AdjustmentRequest{
		ProductID:      f.product.ID,
		LocationID:     f.location.ID,
		AdjustmentType: "manual",
		QuantityChange: &delta,
	}, f.actor.ID)
	require.NoError(t, err)
	return res
}

func TestAdjust_CreatesCounterOnFirstTouch(t *testing.T) {
	f := newInventoryFixture(t)

	res := f.adjust(t, 10)
	assert.Equal(t, 0, res.QuantityBefore)
	assert.Equal(t, 10, res.QuantityAfter)

	var count int64
	require.NoError(t, f.db.Model(&model.Inventory{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "only one counter row per product and location pair")
}

func TestAdjust_ChainsBeforeAndAfter(t *testing.T) {
	f := newInventoryFixture(t)

	deltas := []int{10, -3, 7, -4}
	expected := 0
	for _, d := range deltas {
		res := f.adjust(t, d)
		assert.Equal(t, expected, res.QuantityBefore)
		expected += d
		assert.Equal(t, expected, res.QuantityAfter)
	}
	assert.Equal(t, 10, expected)
}

func TestAdjust_AllowsNegativeQuantity(t *testing.T) {
	f := newInventoryFixture(t)

	f.adjust(t, 2)
	res := f.adjust(t, -5)
	assert.Equal(t, -3, res.QuantityAfter)
}

func TestAdjust_UnknownProduct(t *testing.T) {
	f := newInventoryFixture(t)

	delta := 1
	_, err := f.service.Adjust(&AdjustmentRequest{
		ProductID:      uuid.New(),
		LocationID:     f.location.ID,
		AdjustmentType: "manual",
		QuantityChange: &delta,
	}, f.actor.ID)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 404, e.Status)
}

func TestAdjust_MissingQuantityChange(t *testing.T) {
	f := newInventoryFixture(t)

	_, err := f.service.Adjust(&AdjustmentRequest{
		ProductID:      f.product.ID,
		LocationID:     f.location.ID,
		AdjustmentType: "manual",
	}, f.actor.ID)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 400, e.Status)
}

func TestAdjust_FailureRollsBackEverything(t *testing.T) {
	f := newInventoryFixture(t)
	f.adjust(t, 10)

	delta := 1
	_, err := f.service.Adjust(&AdjustmentRequest{
		ProductID:      f.product.ID,
		LocationID:     uuid.New(),
		AdjustmentType: "manual",
		QuantityChange: &delta,
	}, f.actor.ID)
	require.Error(t, err)

	var ledger int64
	require.NoError(t, f.db.Model(&model.StockAdjustment{}).Count(&ledger).Error)
	assert.EqualValues(t, 1, ledger, "failed adjustment must not leave a ledger entry")

	var inv model.Inventory
	require.NoError(t, f.db.First(&inv, "product_id = ?", f.product.ID).Error)
	assert.Equal(t, 10, inv.Quantity, "failed adjustment must not change the counter")
}

func TestAdjust_ConcurrentIncrementsAreLossless(t *testing.T) {
	f := newInventoryFixture(t)

	const n = 20
	errs := make(chan error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			delta := 1
			_, err := f.service.Adjust(&AdjustmentRequest{
				ProductID:      f.product.ID,
				LocationID:     f.location.ID,
				AdjustmentType: "manual",
				QuantityChange: &delta,
			}, f.actor.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var inv model.Inventory
	require.NoError(t, f.db.First(&inv, "product_id = ? AND location_id = ?", f.product.ID, f.location.ID).Error)
	assert.Equal(t, n, inv.Quantity)

	var ledger int64
	require.NoError(t, f.db.Model(&model.StockAdjustment{}).Count(&ledger).Error)
	assert.EqualValues(t, n, ledger)
}

func TestAdjust_AlertOnThresholdCrossing(t *testing.T) {
	f := newInventoryFixture(t)

	res := f.adjust(t, 10)
	assert.False(t, res.AlertCreated)

	// 10 -> 4 crosses the reorder level of 5
	res = f.adjust(t, -6)
	assert.True(t, res.AlertCreated)

	alerts, err := f.alerts.FindUnresolved()
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "low_stock", alerts[0].AlertType)
	assert.Contains(t, alerts[0].Message, "Widget")

	// Staying below the level does not stack another alert
	res = f.adjust(t, -1)
	assert.False(t, res.AlertCreated)
	alerts, err = f.alerts.FindUnresolved()
	require.NoError(t, err)
	assert.Len(t, alerts, 1)

	// Recovering and crossing again raises a fresh alert
	res = f.adjust(t, 20)
	assert.False(t, res.AlertCreated)
	res = f.adjust(t, -19)
	assert.True(t, res.AlertCreated)
	alerts, err = f.alerts.FindUnresolved()
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestAdjust_AlertWhenStockStartsBelowLevel(t *testing.T) {
	f := newInventoryFixture(t)

	// Reorder level is 5; the pair never rises above it
	res := f.adjust(t, 3)
	assert.True(t, res.AlertCreated)

	res = f.adjust(t, -1)
	assert.False(t, res.AlertCreated, "open alert is not duplicated")

	alerts, err := f.alerts.FindUnresolved()
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestAdjust_WritesAuditEntry(t *testing.T) {
	f := newInventoryFixture(t)
	f.adjust(t, 3)

	var entry model.AuditLog
	require.NoError(t, f.db.First(&entry).Error)
	assert.Equal(t, model.ActionAdjustStock, entry.Action)
	assert.Equal(t, f.actor.ID, entry.UserID)
	assert.Contains(t, entry.NewValue, `"quantityAfter":3`)
}

func TestHistory_NewestFirst(t *testing.T) {
	f := newInventoryFixture(t)

	f.adjust(t, 5)
	time.Sleep(10 * time.Millisecond)
	f.adjust(t, -2)

	rows, err := f.service.History(f.product.ID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, -2, rows[0].QuantityChange)
	assert.Equal(t, 5, rows[0].QuantityBefore)
	assert.Equal(t, 3, rows[0].QuantityAfter)
	assert.Equal(t, 5, rows[1].QuantityChange)
	assert.Equal(t, 0, rows[1].QuantityBefore)
	assert.Equal(t, "Staff", rows[0].AdjustedByName)
	assert.Equal(t, "Main Store", rows[0].LocationName)

	// Reading history twice returns identical rows
	again, err := f.service.History(f.product.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}
