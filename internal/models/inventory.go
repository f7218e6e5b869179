package models

import (
	"time"

	"gorm.io/gorm"
)

type InventoryItem struct {
	ID                    uint           `json:"id" gorm:"primaryKey"`
	RestaurantID          uint           `json:"restaurant_id" gorm:"index;not null"`
	Name                  string         `json:"name" gorm:"not null"`
	Type                  string         `json:"type" gorm:"default:'raw'"` // raw, preparation
	Category              string         `json:"category"`
	Unit                  string         `json:"unit"`
	CurrentQuantity       float64        `json:"current_quantity" gorm:"default:0"`
	MinQuantity           float64        `json:"min_quantity" gorm:"default:0"`
	LastUpdated           *time.Time     `json:"last_updated"`
	UpdateFrequency       string         `json:"update_frequency"` // daily, weekly, monthly
	SupplierID            uint           `json:"supplier_id"`
	AvgWeeklyConsumption  float64        `json:"avg_weekly_consumption"`
	AvgMonthlyConsumption float64        `json:"avg_monthly_consumption"`
	CostPerUnit           float64        `json:"cost_per_unit"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ItemType string

const (
	ItemRaw         ItemType = "raw"
	ItemPreparation ItemType = "preparation"
)

type UpdateFrequency string

const (
	FrequencyDaily   UpdateFrequency = "daily"
	FrequencyWeekly  UpdateFrequency = "weekly"
	FrequencyMonthly UpdateFrequency = "monthly"
)

// InventoryHistory is an append-only audit record for one quantity change.
// Records are never updated or deleted.
type InventoryHistory struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	InventoryItemID uint      `json:"inventory_item_id" gorm:"index;not null"`
	Date            time.Time `json:"date" gorm:"not null"`
	Amount          float64   `json:"amount"`
	Type            string    `json:"type" gorm:"not null"` // tookInventory, receivedOrder
	CreatedAt       time.Time `json:"created_at"`
}

type HistoryType string

const (
	HistoryTookInventory HistoryType = "tookInventory"
	HistoryReceivedOrder HistoryType = "receivedOrder"
)
