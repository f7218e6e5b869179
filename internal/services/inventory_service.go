package services

import (
	"time"

	"github.com/metadiego/inventory-manager-be/internal/apperrors"
	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/repository"
	"github.com/metadiego/inventory-manager-be/internal/validation"
)

type InventoryService interface {
	CreateItem(item *models.InventoryItem) error
	GetItems(restaurantID uint) ([]models.InventoryItem, error)
	GetItemByID(restaurantID, id uint) (*models.InventoryItem, error)
	UpdateItem(restaurantID uint, item *models.InventoryItem) error
	TakeInventory(restaurantID, itemID uint, quantity float64) error
	GetHistory(restaurantID, itemID uint) ([]models.InventoryHistory, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	historyRepo   repository.InventoryHistoryRepository
}

func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	historyRepo repository.InventoryHistoryRepository,
) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		historyRepo:   historyRepo,
	}
}

func (s *inventoryService) CreateItem(item *models.InventoryItem) error {
	if err := validation.ValidateInventoryItem(item); err != nil {
		return err
	}
	if err := s.inventoryRepo.Create(item); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *inventoryService) GetItems(restaurantID uint) ([]models.InventoryItem, error) {
	items, err := s.inventoryRepo.GetByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return items, nil
}

func (s *inventoryService) GetItemByID(restaurantID, id uint) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(restaurantID, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if item == nil {
		return nil, apperrors.NotFound("inventory item %d not found", id)
	}
	return item, nil
}

func (s *inventoryService) UpdateItem(restaurantID uint, item *models.InventoryItem) error {
	if err := validation.ValidateTenant(item.RestaurantID, restaurantID); err != nil {
		return err
	}
	if err := validation.ValidateInventoryItem(item); err != nil {
		return err
	}
	existing, err := s.GetItemByID(restaurantID, item.ID)
	if err != nil {
		return err
	}
	// Quantity edits refresh the staleness clock.
	if existing.CurrentQuantity != item.CurrentQuantity {
		now := time.Now()
		item.LastUpdated = &now
	} else {
		item.LastUpdated = existing.LastUpdated
	}
	if err := s.inventoryRepo.Update(item); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// TakeInventory sets the counted quantity and appends exactly one audit
// record for the count in the same logical operation.
func (s *inventoryService) TakeInventory(restaurantID, itemID uint, quantity float64) error {
	if err := validation.ValidateQuantity(quantity); err != nil {
		return err
	}

	item, err := s.GetItemByID(restaurantID, itemID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.inventoryRepo.SetQuantity(restaurantID, item.ID, quantity, now); err != nil {
		return apperrors.Internal(err)
	}

	record := &models.InventoryHistory{
		InventoryItemID: item.ID,
		Date:            now,
		Amount:          quantity,
		Type:            string(models.HistoryTookInventory),
	}
	if err := s.historyRepo.Create(record); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *inventoryService) GetHistory(restaurantID, itemID uint) ([]models.InventoryHistory, error) {
	if _, err := s.GetItemByID(restaurantID, itemID); err != nil {
		return nil, err
	}
	records, err := s.historyRepo.GetByItem(itemID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return records, nil
}
