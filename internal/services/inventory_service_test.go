package services

import (
	"testing"

	"github.com/metadiego/inventory-manager-be/internal/apperrors"
	"github.com/metadiego/inventory-manager-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeInventorySetsQuantityAndAppendsHistory(t *testing.T) {
	item := &models.InventoryItem{ID: 100, RestaurantID: 1, Name: "Tomatoes", CurrentQuantity: 5}
	inventory := newFakeInventoryRepo(item)
	history := &fakeHistoryRepo{}
	service := NewInventoryService(inventory, history)

	err := service.TakeInventory(1, 100, 3)

	require.NoError(t, err)
	assert.Equal(t, 3.0, inventory.items[100].CurrentQuantity)
	assert.NotNil(t, inventory.items[100].LastUpdated)

	require.Len(t, history.records, 1)
	assert.Equal(t, uint(100), history.records[0].InventoryItemID)
	assert.Equal(t, 3.0, history.records[0].Amount)
	assert.Equal(t, string(models.HistoryTookInventory), history.records[0].Type)
}

func TestTakeInventoryNegativeQuantity(t *testing.T) {
	item := &models.InventoryItem{ID: 100, RestaurantID: 1, Name: "Tomatoes", CurrentQuantity: 5}
	inventory := newFakeInventoryRepo(item)
	history := &fakeHistoryRepo{}
	service := NewInventoryService(inventory, history)

	err := service.TakeInventory(1, 100, -1)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Equal(t, 5.0, inventory.items[100].CurrentQuantity)
	assert.Empty(t, history.records)
}

func TestTakeInventoryUnknownItem(t *testing.T) {
	service := NewInventoryService(newFakeInventoryRepo(), &fakeHistoryRepo{})

	err := service.TakeInventory(1, 999, 3)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestTakeInventoryWrongTenant(t *testing.T) {
	item := &models.InventoryItem{ID: 100, RestaurantID: 2, Name: "Tomatoes", CurrentQuantity: 5}
	service := NewInventoryService(newFakeInventoryRepo(item), &fakeHistoryRepo{})

	err := service.TakeInventory(1, 100, 3)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
