package main

import (
	"fmt"
	"log"
	"time"

	"github.com/metadiego/inventory-manager-be/internal/config"
	"github.com/metadiego/inventory-manager-be/internal/database"
	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/repository"
	"github.com/metadiego/inventory-manager-be/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Create default admin user
	fmt.Println("Creating default admin user...")
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	existingUser, err := userService.GetUserByUsername("admin")
	if err == nil && existingUser != nil {
		fmt.Println("Admin user already exists")
		return
	}

	restaurantRepo := repository.NewRestaurantRepository(db)
	restaurant := &models.Restaurant{
		Name:     "Demo Restaurant",
		Email:    "office@demo-restaurant.example.com",
		Phone:    "15550100",
		Timezone: "Local",
	}
	if err := restaurantRepo.Create(restaurant); err != nil {
		log.Fatal("Failed to create demo restaurant:", err)
	}

	admin := &models.User{
		RestaurantID: restaurant.ID,
		Username:     "admin",
		Email:        "admin@demo-restaurant.example.com",
		Role:         string(models.RoleAdmin),
		IsActive:     true,
	}
	err = userService.CreateUser(admin, "change-me-now")
	if err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		fmt.Println("Admin user created successfully")
		fmt.Println("Username: admin")
	}

	// Create a demo supplier with an email contact channel
	fmt.Println("Creating demo supplier...")
	supplierRepo := repository.NewSupplierRepository(db)
	supplier := &models.Supplier{
		RestaurantID:     restaurant.ID,
		Name:             "Fresh Produce Co",
		DeliversMonday:   true,
		DeliversThursday: true,
		LeadTimeDays:     2,
		ContactMethod:    string(models.ContactEmail),
		Emails:           "orders@freshproduce.example.com",
	}
	if err := supplierRepo.Create(supplier); err != nil {
		log.Printf("Warning: Failed to create demo supplier: %v", err)
	}

	// Create demo inventory items
	fmt.Println("Creating demo inventory items...")
	inventoryRepo := repository.NewInventoryRepository(db)
	now := time.Now()
	items := []models.InventoryItem{
		{
			RestaurantID:    restaurant.ID,
			Name:            "Tomatoes",
			Type:            string(models.ItemRaw),
			Category:        "vegetables",
			Unit:            "kg",
			CurrentQuantity: 12,
			MinQuantity:     5,
			LastUpdated:     &now,
			UpdateFrequency: string(models.FrequencyDaily),
			SupplierID:      supplier.ID,
			CostPerUnit:     2.4,
		},
		{
			RestaurantID:    restaurant.ID,
			Name:            "Olive Oil",
			Type:            string(models.ItemRaw),
			Category:        "pantry",
			Unit:            "l",
			CurrentQuantity: 8,
			MinQuantity:     2,
			LastUpdated:     &now,
			UpdateFrequency: string(models.FrequencyMonthly),
			SupplierID:      supplier.ID,
			CostPerUnit:     7.9,
		},
	}
	for i := range items {
		if err := inventoryRepo.Create(&items[i]); err != nil {
			log.Printf("Warning: Failed to create item %q: %v", items[i].Name, err)
		}
	}

	// Create a demo recipe
	fmt.Println("Creating demo recipe...")
	recipeRepo := repository.NewRecipeRepository(db)
	recipe := &models.Recipe{
		RestaurantID: restaurant.ID,
		Name:         "Tomato Salad",
		SalePrice:    9.5,
		Ingredients: []models.RecipeIngredient{
			{InventoryItemID: items[0].ID, Quantity: 0.3, Unit: "kg"},
			{InventoryItemID: items[1].ID, Quantity: 0.02, Unit: "l"},
		},
	}
	if err := recipeRepo.Create(recipe); err != nil {
		log.Printf("Warning: Failed to create demo recipe: %v", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
