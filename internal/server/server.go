package server

import (
	"github.com/maldura7/clover-inventory-system/internal/handler"
	"github.com/maldura7/clover-inventory-system/internal/middleware"
	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/internal/service"
	"github.com/maldura7/clover-inventory-system/internal/ws"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/pkg/config"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New wires repositories, services and routes into a fiber app. The
// storage handle is injected here and flows down by construction; no
// component holds ambient global state.
func New(db *gorm.DB, cfg *config.Config, log *zap.Logger) *fiber.App {
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// Repositories
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	alertRepo := repository.NewAlertRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	poRepo := repository.NewPurchaseOrderRepo(db)
	syncRepo := repository.NewSyncRepo(db)

	// Services
	authService := service.NewAuthService(userRepo)
	productService := service.NewProductService(productRepo)
	invService := service.NewInventoryService(productRepo, inventoryRepo, alertRepo, auditRepo, db, wsHub)
	poService := service.NewPurchaseOrderService(poRepo, supplierRepo, locationRepo)
	reportService := service.NewReportService(inventoryRepo)
	syncService := service.NewSyncService(syncRepo, productRepo)
	dashService := service.NewDashboardService(productRepo, inventoryRepo, alertRepo, poRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	invHandler := handler.NewInventoryHandler(invService)
	locationHandler := handler.NewLocationHandler(locationRepo)
	supplierHandler := handler.NewSupplierHandler(supplierRepo)
	poHandler := handler.NewPurchaseOrderHandler(poService)
	alertHandler := handler.NewAlertHandler(alertRepo)
	dashHandler := handler.NewDashboardHandler(dashService)
	reportHandler := handler.NewReportHandler(reportService)
	cloverHandler := handler.NewCloverHandler(syncService, cfg)
	healthHandler := handler.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		AppName:      "Clover Inventory System v1.0",
		ErrorHandler: apperr.Handler(log),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(middleware.Metrics())

	// Uniform inbound rate limit across the API surface
	app.Use("/api", limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.RequireAuth(), authHandler.Me)

	// OAuth redirect arrives from a browser without a bearer token
	api.Get("/clover/callback", cloverHandler.Callback)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	protected.Get("/products", productHandler.List)
	protected.Get("/products/:id", productHandler.Get)
	protected.Post("/products", productHandler.Create)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)

	protected.Get("/inventory", invHandler.List)
	protected.Post("/inventory/adjust", middleware.RequireRole(model.RoleAdmin, model.RoleManager), invHandler.Adjust)
	protected.Get("/inventory/history/:productId", invHandler.History)

	protected.Get("/locations", locationHandler.List)
	protected.Post("/locations", middleware.RequireRole(model.RoleAdmin), locationHandler.Create)
	protected.Put("/locations/:id/deactivate", middleware.RequireRole(model.RoleAdmin), locationHandler.Deactivate)

	protected.Get("/suppliers", supplierHandler.List)
	protected.Post("/suppliers", middleware.RequireRole(model.RoleAdmin, model.RoleManager), supplierHandler.Create)

	protected.Get("/purchase-orders", poHandler.List)
	protected.Post("/purchase-orders", middleware.RequireRole(model.RoleAdmin, model.RoleManager), poHandler.Create)

	protected.Get("/alerts", alertHandler.List)
	protected.Put("/alerts/:id/resolve", middleware.RequireRole(model.RoleAdmin, model.RoleManager), alertHandler.Resolve)

	protected.Get("/dashboard/stats", dashHandler.Stats)
	protected.Get("/dashboard/top-products", dashHandler.TopProducts)

	protected.Get("/reports/inventory-report", reportHandler.InventoryReport)

	protected.Get("/clover/sync-history", cloverHandler.SyncHistory)
	protected.Post("/clover/sync", cloverHandler.Sync)
	protected.Post("/clover/import", cloverHandler.Import)
	protected.Get("/clover/status", cloverHandler.Status)
	protected.Get("/clover/auth-url", cloverHandler.AuthURL)

	// WebSocket stock event feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	return app
}
