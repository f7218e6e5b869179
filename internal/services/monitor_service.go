package services

import (
	"log"
	"time"

	"github.com/metadiego/inventory-manager-be/internal/apperrors"
	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/redis"
	"github.com/metadiego/inventory-manager-be/internal/repository"
)

// OutdatedItem is one entry of the staleness report.
type OutdatedItem struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	LastUpdated     time.Time `json:"last_updated"`
	UpdateFrequency string    `json:"update_frequency"`
}

// CadenceDays maps an update frequency to the maximum allowed number of
// days between updates. Unrecognized values fall back to daily.
func CadenceDays(frequency string) int {
	switch models.UpdateFrequency(frequency) {
	case models.FrequencyWeekly:
		return 7
	case models.FrequencyMonthly:
		return 30
	default:
		return 1
	}
}

// OutdatedItems flags every item whose whole elapsed days since last update
// reached its cadence. Items missing either the timestamp or the frequency
// are never flagged.
func OutdatedItems(items []models.InventoryItem, now time.Time) []OutdatedItem {
	var outdated []OutdatedItem
	for _, item := range items {
		if item.LastUpdated == nil || item.UpdateFrequency == "" {
			continue
		}
		elapsedDays := int(now.Sub(*item.LastUpdated).Hours() / 24)
		if elapsedDays >= CadenceDays(item.UpdateFrequency) {
			outdated = append(outdated, OutdatedItem{
				ID:              item.ID,
				Name:            item.Name,
				LastUpdated:     *item.LastUpdated,
				UpdateFrequency: item.UpdateFrequency,
			})
		}
	}
	return outdated
}

// SweepCache stores the latest sweep result per restaurant.
type SweepCache interface {
	SetSweepSummary(summary *redis.SweepSummary, ttl time.Duration) error
	GetSweepSummary(restaurantID uint) (*redis.SweepSummary, error)
}

type MonitorService interface {
	// CheckOutdatedItems scans every restaurant's inventory and sends one
	// consolidated notification per restaurant with outdated items. It
	// writes no inventory state and is safe to re-run.
	CheckOutdatedItems() error
	// LatestSummary returns the cached result of the most recent sweep.
	LatestSummary(restaurantID uint) (*redis.SweepSummary, error)
}

type monitorService struct {
	restaurantRepo repository.RestaurantRepository
	inventoryRepo  repository.InventoryRepository
	notifications  NotificationService
	cache          SweepCache
	cacheTTL       time.Duration
}

func NewMonitorService(
	restaurantRepo repository.RestaurantRepository,
	inventoryRepo repository.InventoryRepository,
	notifications NotificationService,
	cache SweepCache,
	cacheTTL time.Duration,
) MonitorService {
	return &monitorService{
		restaurantRepo: restaurantRepo,
		inventoryRepo:  inventoryRepo,
		notifications:  notifications,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

func (s *monitorService) CheckOutdatedItems() error {
	restaurants, err := s.restaurantRepo.GetAll()
	if err != nil {
		return apperrors.Internal(err)
	}

	now := time.Now()
	for _, restaurant := range restaurants {
		items, err := s.inventoryRepo.GetByRestaurant(restaurant.ID)
		if err != nil {
			log.Printf("Failed to load inventory for restaurant %d: %v", restaurant.ID, err)
			continue
		}

		outdated := OutdatedItems(items, now)
		s.cacheSummary(restaurant.ID, outdated, now)
		if len(outdated) == 0 {
			continue
		}

		if err := s.notifications.SendOutdatedItemsAlert(&restaurant, outdated); err != nil {
			log.Printf("Failed to send outdated-items alert for restaurant %d: %v", restaurant.ID, err)
		}
	}
	return nil
}

func (s *monitorService) LatestSummary(restaurantID uint) (*redis.SweepSummary, error) {
	if s.cache == nil {
		return nil, apperrors.NotFound("no sweep summary for restaurant %d", restaurantID)
	}
	summary, err := s.cache.GetSweepSummary(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if summary == nil {
		return nil, apperrors.NotFound("no sweep summary for restaurant %d", restaurantID)
	}
	return summary, nil
}

func (s *monitorService) cacheSummary(restaurantID uint, outdated []OutdatedItem, now time.Time) {
	if s.cache == nil {
		return
	}
	summary := &redis.SweepSummary{
		RestaurantID: restaurantID,
		CheckedAt:    now,
	}
	for _, item := range outdated {
		summary.OutdatedIDs = append(summary.OutdatedIDs, item.ID)
	}
	if err := s.cache.SetSweepSummary(summary, s.cacheTTL); err != nil {
		log.Printf("Failed to cache sweep summary for restaurant %d: %v", restaurantID, err)
	}
}
