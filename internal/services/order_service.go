package services

import (
	"time"

	"github.com/metadiego/inventory-manager-be/internal/apperrors"
	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/repository"
	"github.com/metadiego/inventory-manager-be/internal/validation"
)

// ReceivedItem is one line of a delivery payload. Items not on the original
// order are accepted and still applied to inventory.
type ReceivedItem struct {
	ID       uint    `json:"id"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Name     string  `json:"name"`
}

type CreateOrderItemInput struct {
	InventoryItemID uint    `json:"inventory_item_id"`
	Quantity        float64 `json:"quantity"`
}

type CreateOrderInput struct {
	SupplierID           uint                   `json:"supplier_id"`
	ExpectedDeliveryDate *time.Time             `json:"expected_delivery_date"`
	Items                []CreateOrderItemInput `json:"items"`
}

type OrderService interface {
	CreateOrder(restaurantID uint, in CreateOrderInput) (*models.Order, error)
	GetOrderByID(restaurantID, id uint) (*models.Order, error)
	GetOrders(restaurantID uint) ([]models.Order, error)
	SendOrder(restaurantID, orderID uint) error
	RecordDelivery(restaurantID, orderID uint, received []ReceivedItem) error
	UpdateOrderStatus(restaurantID, orderID uint, status string) error
	CancelOrder(restaurantID, orderID uint) error
}

type orderService struct {
	orderRepo      repository.OrderRepository
	inventoryRepo  repository.InventoryRepository
	historyRepo    repository.InventoryHistoryRepository
	supplierRepo   repository.SupplierRepository
	restaurantRepo repository.RestaurantRepository
	notifications  NotificationService
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	historyRepo repository.InventoryHistoryRepository,
	supplierRepo repository.SupplierRepository,
	restaurantRepo repository.RestaurantRepository,
	notifications NotificationService,
) OrderService {
	return &orderService{
		orderRepo:      orderRepo,
		inventoryRepo:  inventoryRepo,
		historyRepo:    historyRepo,
		supplierRepo:   supplierRepo,
		restaurantRepo: restaurantRepo,
		notifications:  notifications,
	}
}

func (s *orderService) CreateOrder(restaurantID uint, in CreateOrderInput) (*models.Order, error) {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if restaurant == nil {
		return nil, apperrors.NotFound("restaurant %d not found", restaurantID)
	}

	supplier, err := s.supplierRepo.GetByID(restaurantID, in.SupplierID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if supplier == nil {
		return nil, apperrors.NotFound("supplier %d not found", in.SupplierID)
	}

	itemsByID, err := s.loadInventory(restaurantID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		RestaurantID:         restaurantID,
		SupplierID:           supplier.ID,
		SupplierName:         supplier.Name,
		Status:               string(models.OrderPending),
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
	}
	for _, line := range in.Items {
		item, ok := itemsByID[line.InventoryItemID]
		if !ok {
			return nil, apperrors.NotFound("inventory item %d not found", line.InventoryItemID)
		}
		order.Items = append(order.Items, models.OrderItem{
			InventoryItemID:  item.ID,
			Name:             item.Name,
			StockQuantity:    item.CurrentQuantity,
			OrderQuantity:    line.Quantity,
			ReceivedQuantity: 0,
			Unit:             item.Unit,
		})
	}

	if err := validation.ValidateOrder(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.Internal(err)
	}
	return order, nil
}

func (s *orderService) GetOrderByID(restaurantID, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(restaurantID, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if order == nil {
		return nil, apperrors.NotFound("order %d not found", id)
	}
	return order, nil
}

func (s *orderService) GetOrders(restaurantID uint) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

// SendOrder dispatches the order to the supplier by email and moves it to
// sent. The notification and the status write are not one transaction: a
// crash in between leaves a pending order whose email already went out.
func (s *orderService) SendOrder(restaurantID, orderID uint) error {
	order, err := s.GetOrderByID(restaurantID, orderID)
	if err != nil {
		return err
	}
	if order.Status != string(models.OrderPending) {
		return apperrors.InvalidState("order %d cannot be sent from status %q", orderID, order.Status)
	}

	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if restaurant == nil {
		return apperrors.NotFound("restaurant %d not found", restaurantID)
	}

	supplier, err := s.supplierRepo.GetByID(restaurantID, order.SupplierID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if supplier == nil {
		return apperrors.NotFound("supplier %d not found", order.SupplierID)
	}
	if supplier.ContactMethod != string(models.ContactEmail) || len(supplier.EmailList()) == 0 {
		return apperrors.UnsupportedContactMethod("supplier %q has no email contact method", supplier.Name)
	}

	if _, err := s.notifications.SendOrderEmail(order, supplier); err != nil {
		return err
	}

	if err := s.orderRepo.UpdateStatus(restaurantID, orderID, string(models.OrderSent), time.Now()); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// RecordDelivery annotates the order's items with received quantities, marks
// it delivered and reconciles inventory. Three write groups are issued in
// sequence: the order update, the quantity batch and the history batch. Each
// group is atomic on its own but the groups are not one transaction.
func (s *orderService) RecordDelivery(restaurantID, orderID uint, received []ReceivedItem) error {
	for _, r := range received {
		if r.ID == 0 {
			return apperrors.Validation("received item requires an id")
		}
		if err := validation.ValidateQuantity(r.Quantity); err != nil {
			return err
		}
	}

	order, err := s.GetOrderByID(restaurantID, orderID)
	if err != nil {
		return err
	}
	if order.Status == string(models.OrderDelivered) {
		return apperrors.InvalidState("order %d has already been delivered", orderID)
	}

	itemsByID, err := s.loadInventory(restaurantID)
	if err != nil {
		return err
	}

	// Every received id must resolve to a current inventory record before
	// any write is issued.
	receivedByID := make(map[uint]ReceivedItem, len(received))
	for _, r := range received {
		if _, ok := itemsByID[r.ID]; !ok {
			return apperrors.NotFound("inventory item %d not found", r.ID)
		}
		receivedByID[r.ID] = r
	}

	for i := range order.Items {
		if r, ok := receivedByID[order.Items[i].InventoryItemID]; ok {
			order.Items[i].ReceivedQuantity = r.Quantity
		} else {
			order.Items[i].ReceivedQuantity = 0
		}
	}

	now := time.Now()

	order.Status = string(models.OrderDelivered)
	if err := s.orderRepo.SaveDelivered(order, now); err != nil {
		return apperrors.Internal(err)
	}

	deltas := make([]repository.QuantityDelta, 0, len(received))
	histories := make([]models.InventoryHistory, 0, len(received))
	for _, r := range received {
		deltas = append(deltas, repository.QuantityDelta{ItemID: r.ID, Amount: r.Quantity})
		histories = append(histories, models.InventoryHistory{
			InventoryItemID: r.ID,
			Date:            now,
			Amount:          r.Quantity,
			Type:            string(models.HistoryReceivedOrder),
		})
	}

	if err := s.inventoryRepo.ApplyDeliveryDeltas(restaurantID, deltas, now); err != nil {
		return apperrors.Internal(err)
	}
	if err := s.historyRepo.CreateBatch(histories); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// UpdateOrderStatus is the generic status path. It can never set delivered;
// that transition belongs to RecordDelivery alone.
func (s *orderService) UpdateOrderStatus(restaurantID, orderID uint, status string) error {
	if status == string(models.OrderDelivered) {
		return apperrors.InvalidState("delivered can only be set by recording a delivery")
	}
	if err := validation.ValidateOrderStatus(status); err != nil {
		return err
	}

	order, err := s.GetOrderByID(restaurantID, orderID)
	if err != nil {
		return err
	}
	if !models.CanTransition(models.OrderStatus(order.Status), models.OrderStatus(status)) {
		return apperrors.InvalidState("order %d cannot move from %q to %q", orderID, order.Status, status)
	}

	if status == string(models.OrderCancelled) {
		if err := s.orderRepo.Cancel(restaurantID, orderID, time.Now()); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	}

	if err := s.orderRepo.UpdateStatus(restaurantID, orderID, status, time.Now()); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *orderService) CancelOrder(restaurantID, orderID uint) error {
	order, err := s.GetOrderByID(restaurantID, orderID)
	if err != nil {
		return err
	}
	if models.OrderStatus(order.Status).Terminal() {
		return apperrors.InvalidState("order %d cannot be cancelled from status %q", orderID, order.Status)
	}

	if err := s.orderRepo.Cancel(restaurantID, orderID, time.Now()); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *orderService) loadInventory(restaurantID uint) (map[uint]models.InventoryItem, error) {
	items, err := s.inventoryRepo.GetByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	byID := make(map[uint]models.InventoryItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return byID, nil
}
