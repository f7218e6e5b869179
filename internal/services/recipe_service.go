package services

import (
	"github.com/metadiego/inventory-manager-be/internal/apperrors"
	"github.com/metadiego/inventory-manager-be/internal/models"
	"github.com/metadiego/inventory-manager-be/internal/repository"
)

type IngredientCost struct {
	InventoryItemID uint    `json:"inventory_item_id"`
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	CostPerUnit     float64 `json:"cost_per_unit"`
	Cost            float64 `json:"cost"`
}

type RecipeCost struct {
	RecipeID    uint             `json:"recipe_id"`
	Name        string           `json:"name"`
	SalePrice   float64          `json:"sale_price"`
	TotalCost   float64          `json:"total_cost"`
	Margin      float64          `json:"margin"`
	Ingredients []IngredientCost `json:"ingredients"`
}

type RecipeService interface {
	GetRecipes(restaurantID uint) ([]models.Recipe, error)
	Cost(restaurantID, recipeID uint) (*RecipeCost, error)
}

type recipeService struct {
	recipeRepo    repository.RecipeRepository
	inventoryRepo repository.InventoryRepository
}

func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	inventoryRepo repository.InventoryRepository,
) RecipeService {
	return &recipeService{recipeRepo: recipeRepo, inventoryRepo: inventoryRepo}
}

func (s *recipeService) GetRecipes(restaurantID uint) ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.GetByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return recipes, nil
}

// Cost prices a recipe from the current unit cost of each ingredient.
func (s *recipeService) Cost(restaurantID, recipeID uint) (*RecipeCost, error) {
	recipe, err := s.recipeRepo.GetByID(restaurantID, recipeID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if recipe == nil {
		return nil, apperrors.NotFound("recipe %d not found", recipeID)
	}

	items, err := s.inventoryRepo.GetByRestaurant(restaurantID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	itemsByID := make(map[uint]models.InventoryItem, len(items))
	for _, item := range items {
		itemsByID[item.ID] = item
	}

	cost := &RecipeCost{
		RecipeID:  recipe.ID,
		Name:      recipe.Name,
		SalePrice: recipe.SalePrice,
	}
	for _, ingredient := range recipe.Ingredients {
		item, ok := itemsByID[ingredient.InventoryItemID]
		if !ok {
			return nil, apperrors.NotFound("inventory item %d not found", ingredient.InventoryItemID)
		}
		line := IngredientCost{
			InventoryItemID: item.ID,
			Name:            item.Name,
			Quantity:        ingredient.Quantity,
			Unit:            ingredient.Unit,
			CostPerUnit:     item.CostPerUnit,
			Cost:            ingredient.Quantity * item.CostPerUnit,
		}
		cost.Ingredients = append(cost.Ingredients, line)
		cost.TotalCost += line.Cost
	}
	cost.Margin = cost.SalePrice - cost.TotalCost
	return cost, nil
}
