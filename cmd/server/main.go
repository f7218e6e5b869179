package main

import (
	"log"
	"time"

	"github.com/metadiego/inventory-manager-be/internal/config"
	"github.com/metadiego/inventory-manager-be/internal/database"
	"github.com/metadiego/inventory-manager-be/internal/handlers"
	"github.com/metadiego/inventory-manager-be/internal/migrations"
	"github.com/metadiego/inventory-manager-be/internal/redis"
	"github.com/metadiego/inventory-manager-be/internal/repository"
	"github.com/metadiego/inventory-manager-be/internal/services"
	"github.com/metadiego/inventory-manager-be/pkg/mailer"
	"github.com/metadiego/inventory-manager-be/pkg/pos"
	"github.com/metadiego/inventory-manager-be/pkg/whatsapp"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize provider clients
	mailerClient := mailer.NewClient(cfg.MailerAPIURL, cfg.MailerUsername, cfg.MailerPassword)
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword)
	posClient := pos.NewClient(cfg.POSAPIURL, cfg.POSAPIKey)

	// Initialize repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	historyRepo := repository.NewInventoryHistoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// Initialize services
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	userService := services.NewUserService(userRepo)
	notificationService := services.NewNotificationService(notificationRepo, mailerClient, whatsappClient, redisClient, cacheTTL)
	orderService := services.NewOrderService(orderRepo, inventoryRepo, historyRepo, supplierRepo, restaurantRepo, notificationService)
	inventoryService := services.NewInventoryService(inventoryRepo, historyRepo)
	monitorService := services.NewMonitorService(restaurantRepo, inventoryRepo, notificationService, redisClient, cacheTTL)
	recipeService := services.NewRecipeService(recipeRepo, inventoryRepo)
	salesService := services.NewSalesService(saleRepo, recipeRepo, inventoryRepo, posClient, redisClient, cfg.DeductStockOnSales)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(orderService, inventoryService, recipeService, salesService, monitorService, userService)
	webhookHandler := handlers.NewWebhookHandler(notificationService, orderService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		restaurants := api.Group("/restaurants/:restaurant_id")
		{
			restaurants.POST("/orders", apiHandler.CreateOrder)
			restaurants.GET("/orders", apiHandler.GetOrders)
			restaurants.GET("/orders/:order_id", apiHandler.GetOrder)
			restaurants.POST("/orders/:order_id/send", apiHandler.SendOrder)
			restaurants.POST("/orders/:order_id/delivery", apiHandler.RecordOrderDelivery)
			restaurants.PUT("/orders/:order_id/status", apiHandler.UpdateOrderStatus)
			restaurants.POST("/orders/:order_id/cancel", apiHandler.CancelOrder)

			restaurants.GET("/inventory", apiHandler.GetInventory)
			restaurants.POST("/inventory", apiHandler.CreateInventoryItem)
			restaurants.POST("/inventory/:item_id/take-inventory", apiHandler.TakeInventory)
			restaurants.GET("/inventory/:item_id/history", apiHandler.GetInventoryHistory)

			restaurants.GET("/recipes/:recipe_id/cost", apiHandler.GetRecipeCost)
			restaurants.POST("/sales/ingest", apiHandler.IngestSales)
		}

		api.POST("/monitoring/check-outdated-items", apiHandler.CheckOutdatedItems)
		api.GET("/monitoring/sweep-summary/:restaurant_id", apiHandler.GetSweepSummary)
		api.POST("/webhooks/notification-delivery", webhookHandler.HandleDeliveryStatus)
		api.POST("/users", apiHandler.CreateUser)
	}

	// Daily staleness sweep
	go runDailySweep(monitorService, cfg.SweepHour)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// runDailySweep triggers the outdated-items check once a day at the
// configured local hour.
func runDailySweep(monitorService services.MonitorService, hour int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		time.Sleep(time.Until(next))

		log.Println("Running daily outdated-items sweep...")
		if err := monitorService.CheckOutdatedItems(); err != nil {
			log.Printf("Daily sweep failed: %v", err)
		}
	}
}
