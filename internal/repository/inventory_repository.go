package repository

import (
	"errors"
	"time"

	"github.com/metadiego/inventory-manager-be/internal/models"

	"gorm.io/gorm"
)

// QuantityDelta is one stock adjustment applied by a delivery.
type QuantityDelta struct {
	ItemID uint
	Amount float64
}

type InventoryRepository interface {
	Create(item *models.InventoryItem) error
	GetByID(restaurantID, id uint) (*models.InventoryItem, error)
	GetByRestaurant(restaurantID uint) ([]models.InventoryItem, error)
	Update(item *models.InventoryItem) error
	Delete(restaurantID, id uint) error
	SetQuantity(restaurantID, id uint, quantity float64, now time.Time) error
	ApplyDeliveryDeltas(restaurantID uint, deltas []QuantityDelta, now time.Time) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepository) GetByID(restaurantID, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.Where("restaurant_id = ?", restaurantID).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) GetByRestaurant(restaurantID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Where("restaurant_id = ?", restaurantID).Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepository) Delete(restaurantID, id uint) error {
	return r.db.Where("restaurant_id = ?", restaurantID).Delete(&models.InventoryItem{}, id).Error
}

func (r *inventoryRepository) SetQuantity(restaurantID, id uint, quantity float64, now time.Time) error {
	return r.db.Model(&models.InventoryItem{}).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		Updates(map[string]interface{}{
			"current_quantity": quantity,
			"last_updated":     now,
			"updated_at":       now,
		}).Error
}

// ApplyDeliveryDeltas increments every affected item's quantity in one
// atomic batch: all deltas commit together or none do.
func (r *inventoryRepository) ApplyDeliveryDeltas(restaurantID uint, deltas []QuantityDelta, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, delta := range deltas {
			err := tx.Model(&models.InventoryItem{}).
				Where("restaurant_id = ? AND id = ?", restaurantID, delta.ItemID).
				Updates(map[string]interface{}{
					"current_quantity": gorm.Expr("current_quantity + ?", delta.Amount),
					"last_updated":     now,
					"updated_at":       now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
