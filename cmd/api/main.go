package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/internal/server"
	"github.com/maldura7/clover-inventory-system/pkg/config"
	"github.com/maldura7/clover-inventory-system/pkg/database"
	"github.com/maldura7/clover-inventory-system/pkg/jwt"
	"github.com/maldura7/clover-inventory-system/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Config
	cfg := config.Load()
	log := logger.Get()
	defer log.Sync()

	jwt.SetSecret(cfg.JWTSecret)

	// 2. Setup Database
	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatal("failed to migrate schema", zap.Error(err))
	}

	// 3. Seed default admin user
	seedAdmin(db, log)

	// 4. Wire layers and start serving
	app := server.New(db, cfg, log)

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	log.Info("server exited")
}

// seedAdmin creates the default admin account if it doesn't exist.
func seedAdmin(db *gorm.DB, log *zap.Logger) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@cloverpro.com"); err == nil {
		return
	}

	admin := &model.User{
		Email: "admin@cloverpro.com",
		Name:  "System Administrator",
		Role:  model.RoleAdmin,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Warn("failed to hash admin password", zap.Error(err))
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Warn("failed to create admin user", zap.Error(err))
		return
	}
	log.Info("admin user created", zap.String("email", admin.Email))
}
