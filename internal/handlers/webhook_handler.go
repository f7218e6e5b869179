package handlers

import (
	"log"
	"net/http"

	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/services"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives the notification provider's delivery-status
// callbacks. The provider re-posts on uncertainty, so handling must tolerate
// duplicates.
type WebhookHandler struct {
	notificationService services.NotificationService
	orderService        services.OrderService
}

func NewWebhookHandler(
	notificationService services.NotificationService,
	orderService services.OrderService,
) *WebhookHandler {
	return &WebhookHandler{
		notificationService: notificationService,
		orderService:        orderService,
	}
}

// HandleDeliveryStatus applies the callback to the notification record and,
// on a successful delivery of an order notification, moves the order to
// confirmed. Setting confirmed again on redelivery has no observable effect.
func (h *WebhookHandler) HandleDeliveryStatus(c *gin.Context) {
	var cb services.DeliveryCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	notification, err := h.notificationService.ApplyDeliveryCallback(cb)
	if err != nil {
		respondError(c, err)
		return
	}
	if notification == nil {
		// Redelivery of an already processed callback.
		respondOK(c, gin.H{"status": "already_processed"})
		return
	}

	if notification.DeliveryState == string(models.DeliverySuccess) && notification.OrderID != nil {
		err := h.orderService.UpdateOrderStatus(notification.RestaurantID, *notification.OrderID, string(models.OrderConfirmed))
		if err != nil {
			// The order may have been cancelled or delivered in the
			// meantime; the callback itself still succeeded.
			log.Printf("Could not confirm order %d from notification %d: %v", *notification.OrderID, notification.ID, err)
		}
	}

	respondOK(c, gin.H{"status": "processed"})
}
