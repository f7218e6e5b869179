package models

import (
	"time"
)

// Notification is an outbound message record. The delivery
// fields are owned by the external provider and mutated only through its
// asynchronous status callback; the core reads them.
type Notification struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	RestaurantID     uint       `json:"restaurant_id" gorm:"index"`
	OrderID          *uint      `json:"order_id" gorm:"index"`
	Channel          string     `json:"channel" gorm:"not null"` // email, whatsapp
	Recipients       string     `json:"recipients" gorm:"type:text"`
	Subject          string     `json:"subject"`
	Message          string     `json:"message" gorm:"type:text"`
	DeliveryState    string     `json:"delivery_state" gorm:"default:'PENDING'"` // PENDING, SUCCESS, FAILURE
	DeliveryAttempts int        `json:"delivery_attempts" gorm:"default:0"`
	DeliveredAt      *time.Time `json:"delivered_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type DeliveryState string

const (
	DeliveryPending DeliveryState = "PENDING"
	DeliverySuccess DeliveryState = "SUCCESS"
	DeliveryFailure DeliveryState = "FAILURE"
)

type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelWhatsApp NotificationChannel = "whatsapp"
)
