package repository

import (
	"errors"

	"github.com/metadiego/inventory-manager-be/internal/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	GetByID(restaurantID, id uint) (*models.Recipe, error)
	GetByName(restaurantID uint, name string) (*models.Recipe, error)
	GetByRestaurant(restaurantID uint) ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(restaurantID, id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) GetByID(restaurantID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Ingredients").Where("restaurant_id = ?", restaurantID).First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetByName(restaurantID uint, name string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Ingredients").
		Where("restaurant_id = ? AND name = ?", restaurantID, name).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetByRestaurant(restaurantID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Preload("Ingredients").Where("restaurant_id = ?", restaurantID).Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

func (r *recipeRepository) Delete(restaurantID, id uint) error {
	return r.db.Where("restaurant_id = ?", restaurantID).Delete(&models.Recipe{}, id).Error
}
