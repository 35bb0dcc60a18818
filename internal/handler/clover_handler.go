package handler

import (
	"net/url"

	"github.com/maldura7/clover-inventory-system/internal/service"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/pkg/config"

	"github.com/gofiber/fiber/v2"
)

// CloverHandler fronts the sync stub and the OAuth redirect scaffold.
// No token exchange is implemented.
type CloverHandler struct {
	service service.SyncService
	cfg     *config.Config
}

func NewCloverHandler(s service.SyncService, cfg *config.Config) *CloverHandler {
	return &CloverHandler{service: s, cfg: cfg}
}

// SyncHistory returns the last 20 sync attempts
// GET /api/clover/sync-history
func (h *CloverHandler) SyncHistory(c *fiber.Ctx) error {
	history, err := h.service.History()
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(history)
}

// Sync records an export attempt with the current product count
// POST /api/clover/sync
func (h *CloverHandler) Sync(c *fiber.Ctx) error {
	record, err := h.service.Export()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Sync completed",
		"itemsSynced": record.ItemsSynced,
		"syncId":      record.ID,
	})
}

// Import records an import attempt
// POST /api/clover/import
func (h *CloverHandler) Import(c *fiber.Ctx) error {
	record, err := h.service.Import()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Import completed",
		"syncId":  record.ID,
	})
}

// Status reports the last sync attempt, or not-connected
// GET /api/clover/status
func (h *CloverHandler) Status(c *fiber.Ctx) error {
	record, err := h.service.Status()
	if err != nil {
		return err
	}

	if record == nil {
		return c.JSON(fiber.Map{
			"connected": false,
			"message":   "No sync history",
		})
	}

	return c.JSON(fiber.Map{
		"connected":    true,
		"lastSync":     record.CreatedAt,
		"lastSyncType": record.SyncType,
		"itemsSynced":  record.ItemsSynced,
	})
}

// AuthURL returns the sandbox OAuth authorize URL
// GET /api/clover/auth-url
func (h *CloverHandler) AuthURL(c *fiber.Ctx) error {
	authURL := "https://sandbox.dev.clover.com/oauth/authorize?client_id=" + h.cfg.CloverClientID +
		"&response_type=code&redirect_uri=" + url.QueryEscape(h.cfg.CloverRedirectURL)
	return c.JSON(fiber.Map{"authUrl": authURL})
}

// Callback acknowledges the OAuth redirect; no token exchange
// GET /api/clover/callback
func (h *CloverHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return apperr.Validation("No authorization code received")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "OAuth callback received",
		"merchant_id": c.Query("merchant_id"),
		"code":        code,
	})
}
