package repository

import (
	"errors"
	"time"

	"github.com/metadiego/inventory-manager-be/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	UpdateDelivery(id uint, state string, attempts int, now time.Time) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) UpdateDelivery(id uint, state string, attempts int, now time.Time) error {
	updates := map[string]interface{}{
		"delivery_state":    state,
		"delivery_attempts": attempts,
		"updated_at":        now,
	}
	if state == string(models.DeliverySuccess) {
		updates["delivered_at"] = now
	}
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Updates(updates).Error
}
