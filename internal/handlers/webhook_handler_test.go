package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationService struct {
	notification *models.Notification
	err          error
}

func (s *stubNotificationService) SendOrderEmail(order *models.Order, supplier *models.Supplier) (*models.Notification, error) {
	return nil, nil
}

func (s *stubNotificationService) SendOutdatedItemsAlert(restaurant *models.Restaurant, items []services.OutdatedItem) error {
	return nil
}

func (s *stubNotificationService) ApplyDeliveryCallback(cb services.DeliveryCallback) (*models.Notification, error) {
	return s.notification, s.err
}

type statusWrite struct {
	restaurantID uint
	orderID      uint
	status       string
}

type stubOrderService struct {
	statusWrites []statusWrite
}

func (s *stubOrderService) CreateOrder(restaurantID uint, in services.CreateOrderInput) (*models.Order, error) {
	return nil, nil
}

func (s *stubOrderService) GetOrderByID(restaurantID, id uint) (*models.Order, error) {
	return nil, nil
}

func (s *stubOrderService) GetOrders(restaurantID uint) ([]models.Order, error) {
	return nil, nil
}

func (s *stubOrderService) SendOrder(restaurantID, orderID uint) error {
	return nil
}

func (s *stubOrderService) RecordDelivery(restaurantID, orderID uint, received []services.ReceivedItem) error {
	return nil
}

func (s *stubOrderService) UpdateOrderStatus(restaurantID, orderID uint, status string) error {
	s.statusWrites = append(s.statusWrites, statusWrite{restaurantID, orderID, status})
	return nil
}

func (s *stubOrderService) CancelOrder(restaurantID, orderID uint) error {
	return nil
}

func postDeliveryCallback(t *testing.T, notifications services.NotificationService, orders *stubOrderService, cb services.DeliveryCallback) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewWebhookHandler(notifications, orders)
	router.POST("/api/webhooks/notification-delivery", handler.HandleDeliveryStatus)

	body, err := json.Marshal(cb)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/webhooks/notification-delivery", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleDeliveryStatusConfirmsOrder(t *testing.T) {
	orderID := uint(9)
	notifications := &stubNotificationService{notification: &models.Notification{
		ID:            5,
		RestaurantID:  1,
		OrderID:       &orderID,
		DeliveryState: string(models.DeliverySuccess),
	}}
	orders := &stubOrderService{}

	rec := postDeliveryCallback(t, notifications, orders, services.DeliveryCallback{
		NotificationID: 5,
		State:          string(models.DeliverySuccess),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, orders.statusWrites, 1)
	assert.Equal(t, statusWrite{1, 9, string(models.OrderConfirmed)}, orders.statusWrites[0])
	assert.Contains(t, rec.Body.String(), "processed")
}

func TestHandleDeliveryStatusFailureDoesNotConfirm(t *testing.T) {
	orderID := uint(9)
	notifications := &stubNotificationService{notification: &models.Notification{
		ID:            5,
		RestaurantID:  1,
		OrderID:       &orderID,
		DeliveryState: string(models.DeliveryFailure),
	}}
	orders := &stubOrderService{}

	rec := postDeliveryCallback(t, notifications, orders, services.DeliveryCallback{
		NotificationID: 5,
		State:          string(models.DeliveryFailure),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, orders.statusWrites)
}

func TestHandleDeliveryStatusWithoutOrderConfirmsNothing(t *testing.T) {
	notifications := &stubNotificationService{notification: &models.Notification{
		ID:            5,
		RestaurantID:  1,
		DeliveryState: string(models.DeliverySuccess),
	}}
	orders := &stubOrderService{}

	rec := postDeliveryCallback(t, notifications, orders, services.DeliveryCallback{
		NotificationID: 5,
		State:          string(models.DeliverySuccess),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, orders.statusWrites)
}

func TestHandleDeliveryStatusRedelivery(t *testing.T) {
	// A nil notification means the callback was already processed.
	notifications := &stubNotificationService{notification: nil}
	orders := &stubOrderService{}

	rec := postDeliveryCallback(t, notifications, orders, services.DeliveryCallback{
		NotificationID: 5,
		State:          string(models.DeliverySuccess),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, orders.statusWrites)
	assert.Contains(t, rec.Body.String(), "already_processed")
}
