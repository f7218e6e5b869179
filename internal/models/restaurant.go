package models

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant is the tenant aggregate root. Every scoped entity carries its ID.
type Restaurant struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Timezone  string         `json:"timezone" gorm:"default:'Local'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
