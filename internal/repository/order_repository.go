package repository

import (
	"errors"
	"time"

	"github.com/metadiego/inventory-manager-be/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(restaurantID, id uint) (*models.Order, error)
	GetByRestaurant(restaurantID uint) ([]models.Order, error)
	UpdateStatus(restaurantID, id uint, status string, now time.Time) error
	Cancel(restaurantID, id uint, now time.Time) error
	SaveDelivered(order *models.Order, now time.Time) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(restaurantID, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("restaurant_id = ?", restaurantID).First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByRestaurant(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("restaurant_id = ?", restaurantID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(restaurantID, id uint, status string, now time.Time) error {
	return r.db.Model(&models.Order{}).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": now,
		}).Error
}

func (r *orderRepository) Cancel(restaurantID, id uint, now time.Time) error {
	return r.db.Model(&models.Order{}).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		Updates(map[string]interface{}{
			"status":       string(models.OrderCancelled),
			"cancelled_at": now,
			"updated_at":   now,
		}).Error
}

// SaveDelivered writes the order's delivered status and every line item's
// received quantity as one atomic batch.
func (r *orderRepository) SaveDelivered(order *models.Order, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Order{}).
			Where("restaurant_id = ? AND id = ?", order.RestaurantID, order.ID).
			Updates(map[string]interface{}{
				"status":     string(models.OrderDelivered),
				"updated_at": now,
			}).Error
		if err != nil {
			return err
		}
		for _, item := range order.Items {
			err := tx.Model(&models.OrderItem{}).
				Where("id = ?", item.ID).
				Updates(map[string]interface{}{
					"received_quantity": item.ReceivedQuantity,
					"updated_at":        now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
