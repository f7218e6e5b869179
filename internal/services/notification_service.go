package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/metadiego/inventory-manager-be/internal/apperrors"
	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/repository"
	"github.com/metadiego/inventory-manager-be/pkg/mailer"
	"github.com/metadiego/inventory-manager-be/pkg/whatsapp"
)

// CallbackDeduper marks a delivery callback as processed so redeliveries of
// the same state can be skipped.
type CallbackDeduper interface {
	MarkCallbackProcessed(notificationID uint, state string, ttl time.Duration) (bool, error)
}

// DeliveryCallback is the payload the provider posts when a notification's
// delivery state changes.
type DeliveryCallback struct {
	NotificationID uint   `json:"notification_id"`
	State          string `json:"state"`
	Attempts       int    `json:"attempts"`
}

type NotificationService interface {
	SendOrderEmail(order *models.Order, supplier *models.Supplier) (*models.Notification, error)
	SendOutdatedItemsAlert(restaurant *models.Restaurant, items []OutdatedItem) error
	// ApplyDeliveryCallback records the provider's delivery state and returns
	// the updated notification, or nil when the callback was a redelivery
	// that has already been processed.
	ApplyDeliveryCallback(cb DeliveryCallback) (*models.Notification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	mailer           *mailer.Client
	whatsapp         *whatsapp.Client
	dedup            CallbackDeduper
	dedupTTL         time.Duration
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	mailerClient *mailer.Client,
	whatsappClient *whatsapp.Client,
	dedup CallbackDeduper,
	dedupTTL time.Duration,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		mailer:           mailerClient,
		whatsapp:         whatsappClient,
		dedup:            dedup,
		dedupTTL:         dedupTTL,
	}
}

func (s *notificationService) SendOrderEmail(order *models.Order, supplier *models.Supplier) (*models.Notification, error) {
	recipients := supplier.EmailList()
	if len(recipients) == 0 {
		return nil, apperrors.UnsupportedContactMethod("supplier %q has no email addresses", supplier.Name)
	}

	subject := fmt.Sprintf("Purchase order #%d", order.ID)
	body := buildOrderEmailBody(order)

	orderID := order.ID
	notification := &models.Notification{
		RestaurantID:  order.RestaurantID,
		OrderID:       &orderID,
		Channel:       string(models.ChannelEmail),
		Recipients:    strings.Join(recipients, ","),
		Subject:       subject,
		Message:       body,
		DeliveryState: string(models.DeliveryPending),
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.Internal(err)
	}

	// The record id is the reference the provider echoes back in the
	// delivery callback.
	_, err := s.mailer.SendEmail(recipients, subject, body, strconv.FormatUint(uint64(notification.ID), 10))
	if err != nil {
		log.Printf("Failed to dispatch order email for order %d: %v", order.ID, err)
		return nil, apperrors.Internal(err)
	}

	return notification, nil
}

func (s *notificationService) SendOutdatedItemsAlert(restaurant *models.Restaurant, items []OutdatedItem) error {
	if len(items) == 0 {
		return nil
	}

	subject := fmt.Sprintf("%d inventory items need an update", len(items))
	body := buildOutdatedItemsBody(items)

	notification := &models.Notification{
		RestaurantID:  restaurant.ID,
		Channel:       string(models.ChannelEmail),
		Recipients:    restaurant.Email,
		Subject:       subject,
		Message:       body,
		DeliveryState: string(models.DeliveryPending),
	}

	if restaurant.Email != "" {
		if err := s.notificationRepo.Create(notification); err != nil {
			return apperrors.Internal(err)
		}
		_, err := s.mailer.SendEmail([]string{restaurant.Email}, subject, body, strconv.FormatUint(uint64(notification.ID), 10))
		if err != nil {
			return apperrors.Internal(err)
		}
		return nil
	}

	if restaurant.Phone != "" {
		notification.Channel = string(models.ChannelWhatsApp)
		notification.Recipients = restaurant.Phone
		if err := s.notificationRepo.Create(notification); err != nil {
			return apperrors.Internal(err)
		}
		if err := s.whatsapp.SendTextMessage(restaurant.Phone, body); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	}

	return apperrors.UnsupportedContactMethod("restaurant %q has no contact channel", restaurant.Name)
}

func (s *notificationService) ApplyDeliveryCallback(cb DeliveryCallback) (*models.Notification, error) {
	if cb.State != string(models.DeliverySuccess) && cb.State != string(models.DeliveryFailure) {
		return nil, apperrors.Validation("invalid delivery state: %s", cb.State)
	}

	notification, err := s.notificationRepo.GetByID(cb.NotificationID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if notification == nil {
		return nil, apperrors.NotFound("notification %d not found", cb.NotificationID)
	}

	now := time.Now()
	if err := s.notificationRepo.UpdateDelivery(notification.ID, cb.State, cb.Attempts, now); err != nil {
		return nil, apperrors.Internal(err)
	}

	// The provider trigger is at-least-once. The dedup key is marked only
	// after the state is persisted, so a failed write leaves the retry path
	// open; re-applying the same state is a no-op.
	if s.dedup != nil {
		first, err := s.dedup.MarkCallbackProcessed(cb.NotificationID, cb.State, s.dedupTTL)
		if err != nil {
			log.Printf("Callback dedup check failed for notification %d: %v", cb.NotificationID, err)
		} else if !first {
			return nil, nil
		}
	}

	notification.DeliveryState = cb.State
	notification.DeliveryAttempts = cb.Attempts
	if cb.State == string(models.DeliverySuccess) {
		notification.DeliveredAt = &now
	}
	return notification, nil
}

func buildOrderEmailBody(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d for %s\n\n", order.ID, order.SupplierName)
	if order.ExpectedDeliveryDate != nil {
		fmt.Fprintf(&b, "Expected delivery: %s\n\n", order.ExpectedDeliveryDate.Format("2006-01-02"))
	}
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s: %.2f %s\n", item.Name, item.OrderQuantity, item.Unit)
	}
	return b.String()
}

func buildOutdatedItemsBody(items []OutdatedItem) string {
	var b strings.Builder
	b.WriteString("The following inventory items are overdue for an update:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (last updated %s, expected %s)\n",
			item.Name, item.LastUpdated.Format("2006-01-02"), item.UpdateFrequency)
	}
	return b.String()
}
