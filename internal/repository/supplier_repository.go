package repository

import (
	"errors"

	"github.com/metadiego/inventory-manager-be/internal/models"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *models.Supplier) error
	GetByID(restaurantID, id uint) (*models.Supplier, error)
	GetByRestaurant(restaurantID uint) ([]models.Supplier, error)
	Update(supplier *models.Supplier) error
	Delete(restaurantID, id uint) error
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepository) GetByID(restaurantID, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.Where("restaurant_id = ?", restaurantID).First(&supplier, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) GetByRestaurant(restaurantID uint) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.Where("restaurant_id = ?", restaurantID).Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepository) Update(supplier *models.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepository) Delete(restaurantID, id uint) error {
	return r.db.Where("restaurant_id = ?", restaurantID).Delete(&models.Supplier{}, id).Error
}
