package repository

import (
	"github.com/metadiego/inventory-manager-be/internal/models"

	"gorm.io/gorm"
)

// InventoryHistoryRepository appends audit records. There is no update or
// delete on purpose.
type InventoryHistoryRepository interface {
	Create(record *models.InventoryHistory) error
	CreateBatch(records []models.InventoryHistory) error
	GetByItem(itemID uint) ([]models.InventoryHistory, error)
}

type inventoryHistoryRepository struct {
	db *gorm.DB
}

func NewInventoryHistoryRepository(db *gorm.DB) InventoryHistoryRepository {
	return &inventoryHistoryRepository{db: db}
}

func (r *inventoryHistoryRepository) Create(record *models.InventoryHistory) error {
	return r.db.Create(record).Error
}

// CreateBatch appends all records in one atomic batch.
func (r *inventoryHistoryRepository) CreateBatch(records []models.InventoryHistory) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
}

func (r *inventoryHistoryRepository) GetByItem(itemID uint) ([]models.InventoryHistory, error) {
	var records []models.InventoryHistory
	err := r.db.Where("inventory_item_id = ?", itemID).Order("date DESC").Find(&records).Error
	return records, err
}
