package handlers

import (
	"net/http"

	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/services"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	orderService     services.OrderService
	inventoryService services.InventoryService
	recipeService    services.RecipeService
	salesService     services.SalesService
	monitorService   services.MonitorService
	userService      services.UserService
}

func NewAPIHandler(
	orderService services.OrderService,
	inventoryService services.InventoryService,
	recipeService services.RecipeService,
	salesService services.SalesService,
	monitorService services.MonitorService,
	userService services.UserService,
) *APIHandler {
	return &APIHandler{
		orderService:     orderService,
		inventoryService: inventoryService,
		recipeService:    recipeService,
		salesService:     salesService,
		monitorService:   monitorService,
		userService:      userService,
	}
}

// Order endpoints

func (h *APIHandler) CreateOrder(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	var req services.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	order, err := h.orderService.CreateOrder(restaurantID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": order.ID})
}

func (h *APIHandler) GetOrders(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrders(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

func (h *APIHandler) GetOrder(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "order_id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(restaurantID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

func (h *APIHandler) SendOrder(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "order_id")
	if !ok {
		return
	}

	if err := h.orderService.SendOrder(restaurantID, orderID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": orderID})
}

func (h *APIHandler) RecordOrderDelivery(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "order_id")
	if !ok {
		return
	}

	var req struct {
		ReceivedItems []services.ReceivedItem `json:"received_items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	if err := h.orderService.RecordDelivery(restaurantID, orderID, req.ReceivedItems); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": orderID})
}

func (h *APIHandler) UpdateOrderStatus(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "order_id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	if err := h.orderService.UpdateOrderStatus(restaurantID, orderID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": orderID})
}

func (h *APIHandler) CancelOrder(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "order_id")
	if !ok {
		return
	}

	if err := h.orderService.CancelOrder(restaurantID, orderID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": orderID})
}

// Inventory endpoints

func (h *APIHandler) GetInventory(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	items, err := h.inventoryService.GetItems(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (h *APIHandler) CreateInventoryItem(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}
	item.RestaurantID = restaurantID

	if err := h.inventoryService.CreateItem(&item); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": item.ID})
}

func (h *APIHandler) TakeInventory(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "item_id")
	if !ok {
		return
	}

	var req struct {
		Quantity float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	if err := h.inventoryService.TakeInventory(restaurantID, itemID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": itemID})
}

func (h *APIHandler) GetInventoryHistory(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "item_id")
	if !ok {
		return
	}

	records, err := h.inventoryService.GetHistory(restaurantID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, records)
}

// Recipe endpoints

func (h *APIHandler) GetRecipeCost(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}
	recipeID, ok := parseUintParam(c, "recipe_id")
	if !ok {
		return
	}

	cost, err := h.recipeService.Cost(restaurantID, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, cost)
}

// Sales endpoints

func (h *APIHandler) IngestSales(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	ingested, err := h.salesService.IngestSales(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"ingested": ingested})
}

// Monitoring endpoint (also invoked by the daily scheduler)

func (h *APIHandler) CheckOutdatedItems(c *gin.Context) {
	if err := h.monitorService.CheckOutdatedItems(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "checked"})
}

func (h *APIHandler) GetSweepSummary(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurant_id")
	if !ok {
		return
	}

	summary, err := h.monitorService.LatestSummary(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, summary)
}

// User endpoints

func (h *APIHandler) CreateUser(c *gin.Context) {
	var req struct {
		RestaurantID uint   `json:"restaurant_id"`
		Username     string `json:"username"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		Role         string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	user := &models.User{
		RestaurantID: req.RestaurantID,
		Username:     req.Username,
		Email:        req.Email,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := h.userService.CreateUser(user, req.Password); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": user.ID})
}
