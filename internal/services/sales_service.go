package services

import (
	"fmt"
	"log"
	"time"

	"github.com/metadiego/inventory-manager-be/internal/apperrors"
	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/redis"
	"github.com/metadiego/inventory-manager-be/internal/repository"
	"github.com/metadiego/inventory-manager-be/pkg/pos"
)

// POSClient is the slice of the POS export client the service needs.
type POSClient interface {
	FetchOrders(since time.Time) ([]pos.ExportedOrder, error)
}

type SalesService interface {
	// IngestSales pulls the POS order export and stores new sales. Returns
	// the number of newly ingested rows; re-runs are idempotent per POS id.
	IngestSales(restaurantID uint) (int, error)
	GetSales(restaurantID uint) ([]models.Sale, error)
}

type salesService struct {
	saleRepo      repository.SaleRepository
	recipeRepo    repository.RecipeRepository
	inventoryRepo repository.InventoryRepository
	pos           POSClient
	redis         *redis.Client
	deductStock   bool
}

func NewSalesService(
	saleRepo repository.SaleRepository,
	recipeRepo repository.RecipeRepository,
	inventoryRepo repository.InventoryRepository,
	posClient POSClient,
	redisClient *redis.Client,
	deductStock bool,
) SalesService {
	return &salesService{
		saleRepo:      saleRepo,
		recipeRepo:    recipeRepo,
		inventoryRepo: inventoryRepo,
		pos:           posClient,
		redis:         redisClient,
		deductStock:   deductStock,
	}
}

func (s *salesService) IngestSales(restaurantID uint) (int, error) {
	since := s.lastIngest(restaurantID)

	exported, err := s.pos.FetchOrders(since)
	if err != nil {
		return 0, apperrors.Internal(err)
	}

	ingested := 0
	for _, order := range exported {
		sale := &models.Sale{
			RestaurantID: restaurantID,
			ExternalID:   order.ID,
			RecipeName:   order.RecipeName,
			Quantity:     order.Quantity,
			Total:        order.Total,
			SoldAt:       order.SoldAt,
		}
		created, err := s.saleRepo.UpsertByExternalID(sale)
		if err != nil {
			return ingested, apperrors.Internal(err)
		}
		if !created {
			continue
		}
		ingested++

		if s.deductStock {
			if err := s.deductIngredients(restaurantID, sale); err != nil {
				log.Printf("Failed to deduct stock for sale %s: %v", sale.ExternalID, err)
			}
		}
	}

	s.rememberIngest(restaurantID)
	return ingested, nil
}

func (s *salesService) GetSales(restaurantID uint) ([]models.Sale, error) {
	sales, err := s.saleRepo.GetByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return sales, nil
}

// deductIngredients lowers stock by the recipe's ingredient usage, clamped
// at zero. Sales deductions carry no history record; the history enum only
// covers counts and deliveries.
func (s *salesService) deductIngredients(restaurantID uint, sale *models.Sale) error {
	recipe, err := s.recipeRepo.GetByName(restaurantID, sale.RecipeName)
	if err != nil {
		return err
	}
	if recipe == nil {
		return nil
	}

	now := time.Now()
	for _, ingredient := range recipe.Ingredients {
		item, err := s.inventoryRepo.GetByID(restaurantID, ingredient.InventoryItemID)
		if err != nil {
			return err
		}
		if item == nil {
			continue
		}
		used := ingredient.Quantity * sale.Quantity
		remaining := item.CurrentQuantity - used
		if remaining < 0 {
			remaining = 0
		}
		if err := s.inventoryRepo.SetQuantity(restaurantID, item.ID, remaining, now); err != nil {
			return err
		}
	}
	return nil
}

func (s *salesService) lastIngest(restaurantID uint) time.Time {
	since := time.Now().Add(-24 * time.Hour)
	if s.redis == nil {
		return since
	}
	var stored time.Time
	key := fmt.Sprintf("sales_last_ingest:%d", restaurantID)
	if err := s.redis.GetTempData(key, &stored); err == nil && !stored.IsZero() {
		since = stored
	}
	return since
}

func (s *salesService) rememberIngest(restaurantID uint) {
	if s.redis == nil {
		return
	}
	key := fmt.Sprintf("sales_last_ingest:%d", restaurantID)
	if err := s.redis.SetTempData(key, time.Now(), 7*24*time.Hour); err != nil {
		log.Printf("Failed to store last ingest time for restaurant %d: %v", restaurantID, err)
	}
}
