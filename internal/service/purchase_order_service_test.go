package service

import (
	"testing"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/internal/testutil"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type poFixture struct {
	db       *gorm.DB
	service  PurchaseOrderService
	supplier *model.Supplier
	location *model.Location
	product  *model.Product
	actor    uuid.UUID
}

func newPOFixture(t *testing.T) *poFixture {
	t.Helper()
	db := testutil.OpenDB(t)

	supplier := &model.Supplier{Name: "Acme Supply"}
	require.NoError(t, db.Create(supplier).Error)
	location := &model.Location{Name: "Main Store"}
	require.NoError(t, db.Create(location).Error)
	product := &model.Product{Name: "Widget"}
	require.NoError(t, db.Create(product).Error)

	svc := NewPurchaseOrderService(
		repository.NewPurchaseOrderRepo(db),
		repository.NewSupplierRepo(db),
		repository.NewLocationRepo(db),
	)
	return &poFixture{db: db, service: svc, supplier: supplier, location: location, product: product, actor: uuid.New()}
}

func TestCreatePurchaseOrder(t *testing.T) {
	f := newPOFixture(t)

	resp, err := f.service.Create(&CreatePurchaseOrderRequest{
		SupplierID: f.supplier.ID,
		LocationID: f.location.ID,
		Notes:      "restock",
		Items: []PurchaseOrderItemRequest{
			{ProductID: f.product.ID, Quantity: 10, UnitCost: 1.25},
			{ProductID: f.product.ID, Quantity: 5, UnitCost: 1.10},
		},
	}, f.actor)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.PONumber)
	assert.Contains(t, resp.PONumber, "PO-")

	var po model.PurchaseOrder
	require.NoError(t, f.db.First(&po, "id = ?", resp.POID).Error)
	assert.Equal(t, model.PurchaseOrderStatusDraft, po.Status)
	assert.Equal(t, f.actor, po.CreatedByID)

	var items int64
	require.NoError(t, f.db.Model(&model.PurchaseOrderItem{}).
		Where("purchase_order_id = ?", resp.POID).Count(&items).Error)
	assert.EqualValues(t, 2, items)
}

func TestCreatePurchaseOrder_NoItems(t *testing.T) {
	f := newPOFixture(t)

	_, err := f.service.Create(&CreatePurchaseOrderRequest{
		SupplierID: f.supplier.ID,
		LocationID: f.location.ID,
	}, f.actor)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 400, e.Status)
}

func TestCreatePurchaseOrder_UnknownSupplier(t *testing.T) {
	f := newPOFixture(t)

	_, err := f.service.Create(&CreatePurchaseOrderRequest{
		SupplierID: uuid.New(),
		LocationID: f.location.ID,
		Items:      []PurchaseOrderItemRequest{{ProductID: f.product.ID, Quantity: 1}},
	}, f.actor)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 404, e.Status)
	assert.Equal(t, "Supplier not found", e.Message)
}
