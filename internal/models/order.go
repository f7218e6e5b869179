package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID                   uint           `json:"id" gorm:"primaryKey"`
	RestaurantID         uint           `json:"restaurant_id" gorm:"index;not null"`
	SupplierID           uint           `json:"supplier_id" gorm:"not null"`
	SupplierName         string         `json:"supplier_name"`
	Status               string         `json:"status" gorm:"default:'pending'"` // pending, sent, confirmed, delivered, cancelled
	ExpectedDeliveryDate *time.Time     `json:"expected_delivery_date"`
	CancelledAt          *time.Time     `json:"cancelled_at"`
	Items                []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderSent      OrderStatus = "sent"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// statusRank orders the forward path pending → sent → confirmed → delivered.
var statusRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderSent:      1,
	OrderConfirmed: 2,
	OrderDelivered: 3,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderSent, OrderConfirmed, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransition reports whether the status state machine allows from → to.
// Transitions are monotonic along the forward path; cancelled is reachable
// from any non-terminal state. Re-writing the same non-terminal status is
// allowed so that at-least-once triggers stay idempotent.
func CanTransition(from, to OrderStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from.Terminal() {
		return false
	}
	if to == OrderCancelled {
		return true
	}
	if from == to {
		return true
	}
	return statusRank[to] > statusRank[from]
}
