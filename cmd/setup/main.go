// Command setup provisions a fresh database with sample data for local
// development. It drops existing tables, so never point it at production.
package main

import (
	"log"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/pkg/config"
	"github.com/maldura7/clover-inventory-system/pkg/database"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Rebuild Schema
	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("❌ Failed to connect database: %v", err)
	}
	if err := db.Migrator().DropTable(model.All()...); err != nil {
		log.Fatalf("❌ Failed to drop tables: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatalf("❌ Failed to migrate schema: %v", err)
	}
	log.Println("✅ Schema created")

	// 3. Admin User
	admin := &model.User{
		Email: "admin@cloverpro.com",
		Name:  "System Administrator",
		Role:  model.RoleAdmin,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"
	if err := admin.SetPassword("admin123"); err != nil {
		log.Fatalf("❌ Failed to hash admin password: %v", err)
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("❌ Failed to create admin user: %v", err)
	}
	log.Println("✅ Admin user created: admin@cloverpro.com / admin123")

	// 4. Default Location
	location := &model.Location{
		Name:    "Main Store",
		Address: "123 Main St",
		City:    "New York",
		State:   "NY",
		ZipCode: "10001",
	}
	if err := db.Create(location).Error; err != nil {
		log.Fatalf("❌ Failed to create location: %v", err)
	}
	log.Println("✅ Location created: Main Store")

	// 5. Sample Product with starting stock
	sku := "SAMPLE-001"
	product := &model.Product{
		SKU:          &sku,
		Name:         "Sample Product",
		Description:  "A sample product to get you started",
		CostPrice:    10.00,
		SellingPrice: 15.00,
	}
	if err := db.Create(product).Error; err != nil {
		log.Fatalf("❌ Failed to create product: %v", err)
	}
	if err := db.Create(&model.Inventory{
		ProductID:  product.ID,
		LocationID: location.ID,
		Quantity:   100,
	}).Error; err != nil {
		log.Fatalf("❌ Failed to create inventory record: %v", err)
	}
	log.Println("✅ Sample product created: SAMPLE-001 (100 units at Main Store)")

	log.Println("✅ Setup complete")
}
