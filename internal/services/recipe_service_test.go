package services

import (
	"testing"

	"github.com/metadiego/inventory-manager-be/internal/apperrors"
	"github.com/metadiego/inventory-manager-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeCost(t *testing.T) {
	inventory := newFakeInventoryRepo(
		&models.InventoryItem{ID: 1, RestaurantID: 1, Name: "Tomatoes", Unit: "kg", CostPerUnit: 2.5},
		&models.InventoryItem{ID: 2, RestaurantID: 1, Name: "Olive Oil", Unit: "l", CostPerUnit: 8.0},
	)
	recipes := newFakeRecipeRepo(&models.Recipe{
		ID:           7,
		RestaurantID: 1,
		Name:         "Tomato Salad",
		SalePrice:    9.5,
		Ingredients: []models.RecipeIngredient{
			{InventoryItemID: 1, Quantity: 0.4, Unit: "kg"},
			{InventoryItemID: 2, Quantity: 0.05, Unit: "l"},
		},
	})
	service := NewRecipeService(recipes, inventory)

	cost, err := service.Cost(1, 7)

	require.NoError(t, err)
	assert.Equal(t, "Tomato Salad", cost.Name)
	assert.InDelta(t, 1.4, cost.TotalCost, 1e-9)
	assert.InDelta(t, 8.1, cost.Margin, 1e-9)
	require.Len(t, cost.Ingredients, 2)
	assert.InDelta(t, 1.0, cost.Ingredients[0].Cost, 1e-9)
}

func TestRecipeCostUnknownRecipe(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepo(), newFakeInventoryRepo())

	_, err := service.Cost(1, 99)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestRecipeCostMissingIngredient(t *testing.T) {
	recipes := newFakeRecipeRepo(&models.Recipe{
		ID:           7,
		RestaurantID: 1,
		Name:         "Tomato Salad",
		Ingredients:  []models.RecipeIngredient{{InventoryItemID: 404, Quantity: 1}},
	})
	service := NewRecipeService(recipes, newFakeInventoryRepo())

	_, err := service.Cost(1, 7)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
