package repository

import (
	"github.com/metadiego/inventory-manager-be/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleRepository interface {
	UpsertByExternalID(sale *models.Sale) (bool, error)
	GetByRestaurant(restaurantID uint) ([]models.Sale, error)
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

// UpsertByExternalID inserts the sale unless its POS id was already
// ingested. Returns true when a new row was written.
func (r *saleRepository) UpsertByExternalID(sale *models.Sale) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoNothing: true,
	}).Create(sale)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *saleRepository) GetByRestaurant(restaurantID uint) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Where("restaurant_id = ?", restaurantID).Order("sold_at DESC").Find(&sales).Error
	return sales, err
}
