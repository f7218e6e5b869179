package validation

import (
	"github.com/metadiego/inventory-manager-be/internal/apperrors"
	"github.com/metadiego/inventory-manager-be/internal/models"
)

// Pure pre-write checks. Everything here runs before any store write and has
// no side effects.

func ValidateTenant(entityRestaurantID, restaurantID uint) error {
	if restaurantID == 0 {
		return apperrors.Validation("restaurant id is required")
	}
	if entityRestaurantID != restaurantID {
		return apperrors.Validation("entity does not belong to restaurant %d", restaurantID)
	}
	return nil
}

func ValidateOrderStatus(status string) error {
	if !models.OrderStatus(status).Valid() {
		return apperrors.Validation("invalid order status: %s", status)
	}
	return nil
}

func ValidateQuantity(quantity float64) error {
	if quantity < 0 {
		return apperrors.Validation("quantity cannot be negative")
	}
	return nil
}

func ValidateUpdateFrequency(frequency string) error {
	switch models.UpdateFrequency(frequency) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
		return nil
	}
	return apperrors.Validation("invalid update frequency: %s", frequency)
}

func ValidateInventoryItem(item *models.InventoryItem) error {
	if item.Name == "" {
		return apperrors.Validation("item name is required")
	}
	if item.RestaurantID == 0 {
		return apperrors.Validation("item restaurant id is required")
	}
	if item.Type != string(models.ItemRaw) && item.Type != string(models.ItemPreparation) {
		return apperrors.Validation("invalid item type: %s", item.Type)
	}
	if item.CurrentQuantity < 0 {
		return apperrors.Validation("current quantity cannot be negative")
	}
	if item.MinQuantity < 0 {
		return apperrors.Validation("minimum quantity cannot be negative")
	}
	if item.UpdateFrequency != "" {
		if err := ValidateUpdateFrequency(item.UpdateFrequency); err != nil {
			return err
		}
	}
	return nil
}

func ValidateSupplier(supplier *models.Supplier) error {
	if supplier.Name == "" {
		return apperrors.Validation("supplier name is required")
	}
	if supplier.RestaurantID == 0 {
		return apperrors.Validation("supplier restaurant id is required")
	}
	if supplier.LeadTimeDays < 0 {
		return apperrors.Validation("lead time cannot be negative")
	}
	switch models.ContactMethod(supplier.ContactMethod) {
	case models.ContactEmail:
		if len(supplier.EmailList()) == 0 {
			return apperrors.Validation("email contact method requires at least one address")
		}
		if supplier.Phone != "" {
			return apperrors.Validation("only one contact channel may be active")
		}
	case models.ContactPhone:
		if supplier.Phone == "" {
			return apperrors.Validation("phone contact method requires a phone number")
		}
		if supplier.Emails != "" {
			return apperrors.Validation("only one contact channel may be active")
		}
	case "":
		// contact method is optional
	default:
		return apperrors.Validation("invalid contact method: %s", supplier.ContactMethod)
	}
	return nil
}

func ValidateOrder(order *models.Order) error {
	if order.RestaurantID == 0 {
		return apperrors.Validation("order restaurant id is required")
	}
	if order.SupplierID == 0 {
		return apperrors.Validation("order supplier id is required")
	}
	if len(order.Items) == 0 {
		return apperrors.Validation("order requires at least one item")
	}
	for _, item := range order.Items {
		if item.InventoryItemID == 0 {
			return apperrors.Validation("order item requires an inventory item id")
		}
		if item.OrderQuantity <= 0 {
			return apperrors.Validation("order quantity must be positive for item %q", item.Name)
		}
	}
	return nil
}
