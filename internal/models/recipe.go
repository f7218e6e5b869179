package models

import (
	"time"

	"gorm.io/gorm"
)

type Recipe struct {
	ID           uint               `json:"id" gorm:"primaryKey"`
	RestaurantID uint               `json:"restaurant_id" gorm:"index;not null"`
	Name         string             `json:"name" gorm:"not null"`
	SalePrice    float64            `json:"sale_price"`
	Ingredients  []RecipeIngredient `json:"ingredients" gorm:"foreignKey:RecipeID"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `json:"deleted_at" gorm:"index"`
}

type RecipeIngredient struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	RecipeID        uint    `json:"recipe_id" gorm:"index;not null"`
	InventoryItemID uint    `json:"inventory_item_id" gorm:"not null"`
	Quantity        float64 `json:"quantity" gorm:"not null"`
	Unit            string  `json:"unit"`
}
