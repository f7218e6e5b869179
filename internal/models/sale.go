package models

import (
	"time"
)

// Sale is one line of the point-of-sale order export. ExternalID is the POS
// identifier and keeps re-runs of the ingestion idempotent.
type Sale struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"index;not null"`
	ExternalID   string    `json:"external_id" gorm:"uniqueIndex;not null"`
	RecipeName   string    `json:"recipe_name"`
	Quantity     float64   `json:"quantity"`
	Total        float64   `json:"total"`
	SoldAt       time.Time `json:"sold_at"`
	CreatedAt    time.Time `json:"created_at"`
}
