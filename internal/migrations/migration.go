package migrations

import (
	"log"

	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/repository"
	"github.com/metadiego/inventory-manager-be/internal/services"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations and creates default data
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Restaurant{},
		&models.User{},
		&models.Supplier{},
		&models.InventoryItem{},
		&models.InventoryHistory{},
		&models.Order{},
		&models.OrderItem{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Notification{},
		&models.Sale{},
	)
	if err != nil {
		return err
	}

	// Create default data
	err = createDefaultData(db)
	if err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData creates the default admin account
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	existingUser, err := userService.GetUserByUsername("admin")
	if err == nil && existingUser != nil {
		log.Println("Admin user already exists")
		return nil
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Role:     string(models.RoleAdmin),
		IsActive: true,
	}

	err = userService.CreateUser(admin, "change-me-now")
	if err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created successfully")
	}

	return nil
}
