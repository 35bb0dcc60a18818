package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/testutil"
	"github.com/maldura7/clover-inventory-system/pkg/config"
	"github.com/maldura7/clover-inventory-system/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type apiFixture struct {
	app *fiber.App
	db  *gorm.DB
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	jwt.SetSecret("test-secret")

	db := testutil.OpenDB(t)
	cfg := &config.Config{
		Port:              "0",
		JWTSecret:         "test-secret",
		CloverClientID:    "test-client",
		CloverRedirectURL: "http://localhost:3001/api/clover/callback",
		RateLimitMax:      1000,
		RateLimitWindow:   time.Minute,
	}
	app := New(db, cfg, zap.NewNop())
	return &apiFixture{app: app, db: db}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		// Some endpoints return arrays; those callers decode raw themselves
		_ = json.Unmarshal(raw, &parsed)
	}
	return resp.StatusCode, parsed
}

func (f *apiFixture) doRaw(t *testing.T, method, path, token string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// registerAs creates an account, promotes it to the given role and logs
// in again so the token claims carry the promoted role.
func (f *apiFixture) registerAs(t *testing.T, email string, role model.Role) string {
	t.Helper()

	status, _ := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "pw123456",
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, status)

	if role != model.RoleUser {
		require.NoError(t, f.db.Model(&model.User{}).
			Where("email = ?", email).
			Update("role", role).Error)
	}

	status, body := f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestAuthFlow(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "a@b.com",
		"password": "pw123456",
		"name":     "A",
	})
	require.Equal(t, http.StatusCreated, status)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "a@b.com", user["email"])
	assert.Equal(t, "user", user["role"])

	status, body = f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "a@b.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, status)
	token := body["token"].(string)

	status, body = f.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "a@b.com", body["email"])

	// Same email again is a conflict
	status, body = f.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "a@b.com",
		"password": "other",
		"name":     "B",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email already exists", body["error"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.do(t, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Access token required", body["error"])

	status, body = f.do(t, http.MethodGet, "/api/products", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["error"])
}

func TestAdjustRequiresManagerRole(t *testing.T) {
	f := newAPIFixture(t)
	userToken := f.registerAs(t, "plain@example.com", model.RoleUser)

	status, body := f.do(t, http.MethodPost, "/api/inventory/adjust", userToken, map[string]interface{}{
		"productId":      "00000000-0000-0000-0000-000000000001",
		"locationId":     "00000000-0000-0000-0000-000000000002",
		"adjustmentType": "manual",
		"quantityChange": 1,
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Insufficient permissions", body["error"])
	assert.Equal(t, "user", body["userRole"])
	assert.ElementsMatch(t, []interface{}{"admin", "manager"}, body["requiredRoles"])
}

func TestInventoryEndToEnd(t *testing.T) {
	f := newAPIFixture(t)
	adminToken := f.registerAs(t, "admin@example.com", model.RoleAdmin)

	// Location
	status, body := f.do(t, http.MethodPost, "/api/locations", adminToken, map[string]string{
		"name": "Main Store",
		"city": "New York",
	})
	require.Equal(t, http.StatusCreated, status)
	locationID := body["locationId"].(string)

	// Product with a low reorder level
	status, body = f.do(t, http.MethodPost, "/api/products", adminToken, map[string]interface{}{
		"name":         "Widget",
		"sku":          "WID-001",
		"costPrice":    1.0,
		"sellingPrice": 2.0,
		"reorderLevel": 5,
	})
	require.Equal(t, http.StatusCreated, status)
	productID := body["id"].(string)

	// Receive stock
	status, body = f.do(t, http.MethodPost, "/api/inventory/adjust", adminToken, map[string]interface{}{
		"productId":      productID,
		"locationId":     locationID,
		"adjustmentType": "received",
		"quantityChange": 10,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["quantityBefore"])
	assert.Equal(t, float64(10), body["quantityAfter"])

	time.Sleep(10 * time.Millisecond)

	// Sell past the reorder level
	status, body = f.do(t, http.MethodPost, "/api/inventory/adjust", adminToken, map[string]interface{}{
		"productId":      productID,
		"locationId":     locationID,
		"adjustmentType": "sold",
		"quantityChange": -6,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(10), body["quantityBefore"])
	assert.Equal(t, float64(4), body["quantityAfter"])

	// History is newest first and chains before/after
	status, raw := f.doRaw(t, http.MethodGet, "/api/inventory/history/"+productID, adminToken)
	require.Equal(t, http.StatusOK, status)
	var history []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &history))
	require.Len(t, history, 2)
	assert.Equal(t, float64(-6), history[0]["quantity_change"])
	assert.Equal(t, float64(10), history[0]["quantity_before"])
	assert.Equal(t, float64(4), history[0]["quantity_after"])
	assert.Equal(t, float64(10), history[1]["quantity_change"])

	// Crossing the reorder level raised exactly one alert
	status, raw = f.doRaw(t, http.MethodGet, "/api/alerts", adminToken)
	require.Equal(t, http.StatusOK, status)
	var alerts []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, "low_stock", alerts[0]["alert_type"])
	assert.Contains(t, alerts[0]["message"], "Widget")

	// Resolving it empties the list
	alertID := alerts[0]["id"].(string)
	status, _ = f.do(t, http.MethodPut, "/api/alerts/"+alertID+"/resolve", adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, raw = f.doRaw(t, http.MethodGet, "/api/alerts", adminToken)
	require.Equal(t, http.StatusOK, status)
	alerts = nil
	require.NoError(t, json.Unmarshal(raw, &alerts))
	assert.Empty(t, alerts)

	// Dashboard reflects the catalog
	status, body = f.do(t, http.MethodGet, "/api/dashboard/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["totalProducts"])
	assert.Equal(t, float64(4), body["totalInventoryValue"])
	assert.Equal(t, float64(1), body["lowStockProducts"])
	assert.Equal(t, float64(0), body["activeAlerts"])
}

func TestReportFormats(t *testing.T) {
	f := newAPIFixture(t)
	token := f.registerAs(t, "viewer@example.com", model.RoleUser)

	status, raw := f.doRaw(t, http.MethodGet, "/api/reports/inventory-report?format=csv", token)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "SKU,Name,Quantity")

	status, body := f.do(t, http.MethodGet, "/api/reports/inventory-report?format=pdf", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "Unsupported report format")
}

func TestCloverStub(t *testing.T) {
	f := newAPIFixture(t)
	token := f.registerAs(t, "sync@example.com", model.RoleUser)

	status, body := f.do(t, http.MethodGet, "/api/clover/status", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["connected"])

	status, body = f.do(t, http.MethodPost, "/api/clover/sync", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Sync completed", body["message"])

	status, body = f.do(t, http.MethodGet, "/api/clover/status", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["connected"])
	assert.Equal(t, "export", body["lastSyncType"])

	// Callback without a code is rejected
	status, _ = f.do(t, http.MethodGet, "/api/clover/callback", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = f.do(t, http.MethodGet, fmt.Sprintf("/api/clover/callback?code=%s", "abc123"), "", nil)
	assert.Equal(t, http.StatusOK, status)
}
