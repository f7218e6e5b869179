package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a line item on a purchase order. StockQuantity snapshots the
// quantity on hand when the order was created; ReceivedQuantity stays 0 until
// the delivery is recorded and is then set exactly once.
type OrderItem struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	OrderID          uint           `json:"order_id" gorm:"index;not null"`
	InventoryItemID  uint           `json:"inventory_item_id" gorm:"not null"`
	Name             string         `json:"name" gorm:"not null"`
	StockQuantity    float64        `json:"stock_quantity"`
	OrderQuantity    float64        `json:"order_quantity" gorm:"not null"`
	ReceivedQuantity float64        `json:"received_quantity" gorm:"default:0"`
	Unit             string         `json:"unit"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
