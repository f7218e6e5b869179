package services

import (
	"fmt"
	"time"

	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/redis"
	"github.com/metadiego/inventory-manager-be/internal/repository"

	"github.com/metadiego/inventory-manager-be/pkg/pos"
)

type fakeOrderRepo struct {
	orders        map[uint]*models.Order
	statusWrites  []string
	cancelled     []uint
	delivered     []*models.Order
	createdOrders []*models.Order
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[uint]*models.Order)}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	if order.ID == 0 {
		order.ID = uint(len(r.orders) + 1)
	}
	r.orders[order.ID] = order
	r.createdOrders = append(r.createdOrders, order)
	return nil
}

func (r *fakeOrderRepo) GetByID(restaurantID, id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok || order.RestaurantID != restaurantID {
		return nil, nil
	}
	return order, nil
}

func (r *fakeOrderRepo) GetByRestaurant(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if order.RestaurantID == restaurantID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(restaurantID, id uint, status string, now time.Time) error {
	r.statusWrites = append(r.statusWrites, status)
	r.orders[id].Status = status
	return nil
}

func (r *fakeOrderRepo) Cancel(restaurantID, id uint, now time.Time) error {
	r.cancelled = append(r.cancelled, id)
	r.orders[id].Status = string(models.OrderCancelled)
	r.orders[id].CancelledAt = &now
	return nil
}

func (r *fakeOrderRepo) SaveDelivered(order *models.Order, now time.Time) error {
	r.delivered = append(r.delivered, order)
	r.orders[order.ID] = order
	return nil
}

type fakeInventoryRepo struct {
	items       map[uint]*models.InventoryItem
	deltaCalls  [][]repository.QuantityDelta
	setQuantity []repository.QuantityDelta
}

func newFakeInventoryRepo(items ...*models.InventoryItem) *fakeInventoryRepo {
	repo := &fakeInventoryRepo{items: make(map[uint]*models.InventoryItem)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeInventoryRepo) Create(item *models.InventoryItem) error {
	if item.ID == 0 {
		item.ID = uint(len(r.items) + 1)
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeInventoryRepo) GetByID(restaurantID, id uint) (*models.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok || item.RestaurantID != restaurantID {
		return nil, nil
	}
	return item, nil
}

func (r *fakeInventoryRepo) GetByRestaurant(restaurantID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeInventoryRepo) Update(item *models.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeInventoryRepo) Delete(restaurantID, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeInventoryRepo) SetQuantity(restaurantID, id uint, quantity float64, now time.Time) error {
	r.setQuantity = append(r.setQuantity, repository.QuantityDelta{ItemID: id, Amount: quantity})
	r.items[id].CurrentQuantity = quantity
	r.items[id].LastUpdated = &now
	return nil
}

func (r *fakeInventoryRepo) ApplyDeliveryDeltas(restaurantID uint, deltas []repository.QuantityDelta, now time.Time) error {
	r.deltaCalls = append(r.deltaCalls, deltas)
	for _, delta := range deltas {
		r.items[delta.ItemID].CurrentQuantity += delta.Amount
		r.items[delta.ItemID].LastUpdated = &now
	}
	return nil
}

type fakeHistoryRepo struct {
	records []models.InventoryHistory
	batches [][]models.InventoryHistory
}

func (r *fakeHistoryRepo) Create(record *models.InventoryHistory) error {
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeHistoryRepo) CreateBatch(records []models.InventoryHistory) error {
	r.batches = append(r.batches, records)
	r.records = append(r.records, records...)
	return nil
}

func (r *fakeHistoryRepo) GetByItem(itemID uint) ([]models.InventoryHistory, error) {
	var records []models.InventoryHistory
	for _, record := range r.records {
		if record.InventoryItemID == itemID {
			records = append(records, record)
		}
	}
	return records, nil
}

type fakeSupplierRepo struct {
	suppliers map[uint]*models.Supplier
}

func newFakeSupplierRepo(suppliers ...*models.Supplier) *fakeSupplierRepo {
	repo := &fakeSupplierRepo{suppliers: make(map[uint]*models.Supplier)}
	for _, supplier := range suppliers {
		repo.suppliers[supplier.ID] = supplier
	}
	return repo
}

func (r *fakeSupplierRepo) Create(supplier *models.Supplier) error {
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) GetByID(restaurantID, id uint) (*models.Supplier, error) {
	supplier, ok := r.suppliers[id]
	if !ok || supplier.RestaurantID != restaurantID {
		return nil, nil
	}
	return supplier, nil
}

func (r *fakeSupplierRepo) GetByRestaurant(restaurantID uint) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	for _, supplier := range r.suppliers {
		if supplier.RestaurantID == restaurantID {
			suppliers = append(suppliers, *supplier)
		}
	}
	return suppliers, nil
}

func (r *fakeSupplierRepo) Update(supplier *models.Supplier) error {
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) Delete(restaurantID, id uint) error {
	delete(r.suppliers, id)
	return nil
}

type fakeRestaurantRepo struct {
	restaurants map[uint]*models.Restaurant
}

func newFakeRestaurantRepo(restaurants ...*models.Restaurant) *fakeRestaurantRepo {
	repo := &fakeRestaurantRepo{restaurants: make(map[uint]*models.Restaurant)}
	for _, restaurant := range restaurants {
		repo.restaurants[restaurant.ID] = restaurant
	}
	return repo
}

func (r *fakeRestaurantRepo) Create(restaurant *models.Restaurant) error {
	r.restaurants[restaurant.ID] = restaurant
	return nil
}

func (r *fakeRestaurantRepo) GetByID(id uint) (*models.Restaurant, error) {
	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, nil
	}
	return restaurant, nil
}

func (r *fakeRestaurantRepo) GetAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	for _, restaurant := range r.restaurants {
		restaurants = append(restaurants, *restaurant)
	}
	return restaurants, nil
}

func (r *fakeRestaurantRepo) Update(restaurant *models.Restaurant) error {
	r.restaurants[restaurant.ID] = restaurant
	return nil
}

type fakeNotifications struct {
	orderEmails []*models.Order
	alerts      [][]OutdatedItem
}

func (n *fakeNotifications) SendOrderEmail(order *models.Order, supplier *models.Supplier) (*models.Notification, error) {
	n.orderEmails = append(n.orderEmails, order)
	orderID := order.ID
	return &models.Notification{ID: uint(len(n.orderEmails)), OrderID: &orderID}, nil
}

func (n *fakeNotifications) SendOutdatedItemsAlert(restaurant *models.Restaurant, items []OutdatedItem) error {
	n.alerts = append(n.alerts, items)
	return nil
}

func (n *fakeNotifications) ApplyDeliveryCallback(cb DeliveryCallback) (*models.Notification, error) {
	return nil, nil
}

type fakeNotificationRepo struct {
	notifications map[uint]*models.Notification
	updateErrs    []error
	updates       int
}

func newFakeNotificationRepo(notifications ...*models.Notification) *fakeNotificationRepo {
	repo := &fakeNotificationRepo{notifications: make(map[uint]*models.Notification)}
	for _, notification := range notifications {
		repo.notifications[notification.ID] = notification
	}
	return repo
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	if notification.ID == 0 {
		notification.ID = uint(len(r.notifications) + 1)
	}
	r.notifications[notification.ID] = notification
	return nil
}

func (r *fakeNotificationRepo) GetByID(id uint) (*models.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	return notification, nil
}

func (r *fakeNotificationRepo) UpdateDelivery(id uint, state string, attempts int, now time.Time) error {
	if len(r.updateErrs) > 0 {
		err := r.updateErrs[0]
		r.updateErrs = r.updateErrs[1:]
		if err != nil {
			return err
		}
	}
	r.updates++
	notification := r.notifications[id]
	notification.DeliveryState = state
	notification.DeliveryAttempts = attempts
	if state == string(models.DeliverySuccess) {
		notification.DeliveredAt = &now
	}
	return nil
}

type fakeDeduper struct {
	marked map[string]bool
}

func newFakeDeduper() *fakeDeduper {
	return &fakeDeduper{marked: make(map[string]bool)}
}

func (d *fakeDeduper) MarkCallbackProcessed(notificationID uint, state string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("%d:%s", notificationID, state)
	if d.marked[key] {
		return false, nil
	}
	d.marked[key] = true
	return true, nil
}

type fakeSweepCache struct {
	summaries map[uint]*redis.SweepSummary
}

func newFakeSweepCache() *fakeSweepCache {
	return &fakeSweepCache{summaries: make(map[uint]*redis.SweepSummary)}
}

func (c *fakeSweepCache) SetSweepSummary(summary *redis.SweepSummary, ttl time.Duration) error {
	c.summaries[summary.RestaurantID] = summary
	return nil
}

func (c *fakeSweepCache) GetSweepSummary(restaurantID uint) (*redis.SweepSummary, error) {
	return c.summaries[restaurantID], nil
}

type fakePOSClient struct {
	orders []pos.ExportedOrder
	calls  int
}

func (c *fakePOSClient) FetchOrders(since time.Time) ([]pos.ExportedOrder, error) {
	c.calls++
	return c.orders, nil
}

type fakeSaleRepo struct {
	sales map[string]*models.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*models.Sale)}
}

func (r *fakeSaleRepo) UpsertByExternalID(sale *models.Sale) (bool, error) {
	if _, ok := r.sales[sale.ExternalID]; ok {
		return false, nil
	}
	sale.ID = uint(len(r.sales) + 1)
	r.sales[sale.ExternalID] = sale
	return true, nil
}

func (r *fakeSaleRepo) GetByRestaurant(restaurantID uint) ([]models.Sale, error) {
	var sales []models.Sale
	for _, sale := range r.sales {
		if sale.RestaurantID == restaurantID {
			sales = append(sales, *sale)
		}
	}
	return sales, nil
}

type fakeRecipeRepo struct {
	recipes map[uint]*models.Recipe
}

func newFakeRecipeRepo(recipes ...*models.Recipe) *fakeRecipeRepo {
	repo := &fakeRecipeRepo{recipes: make(map[uint]*models.Recipe)}
	for _, recipe := range recipes {
		repo.recipes[recipe.ID] = recipe
	}
	return repo
}

func (r *fakeRecipeRepo) Create(recipe *models.Recipe) error {
	r.recipes[recipe.ID] = recipe
	return nil
}

func (r *fakeRecipeRepo) GetByID(restaurantID, id uint) (*models.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok || recipe.RestaurantID != restaurantID {
		return nil, nil
	}
	return recipe, nil
}

func (r *fakeRecipeRepo) GetByName(restaurantID uint, name string) (*models.Recipe, error) {
	for _, recipe := range r.recipes {
		if recipe.RestaurantID == restaurantID && recipe.Name == name {
			return recipe, nil
		}
	}
	return nil, nil
}

func (r *fakeRecipeRepo) GetByRestaurant(restaurantID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	for _, recipe := range r.recipes {
		if recipe.RestaurantID == restaurantID {
			recipes = append(recipes, *recipe)
		}
	}
	return recipes, nil
}

func (r *fakeRecipeRepo) Update(recipe *models.Recipe) error {
	r.recipes[recipe.ID] = recipe
	return nil
}

func (r *fakeRecipeRepo) Delete(restaurantID, id uint) error {
	delete(r.recipes, id)
	return nil
}
