// Package nutrition computes aggregate nutrition facts for recipes.
package nutrition

import (
	"math"

	"calorie-service/internal/model"
)

// Facts is the aggregate nutrition of a recipe. Nutrients are rounded to two
// decimal places, weight to the nearest gram.
type Facts struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalFat      float64 `json:"totalFat"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalWeight   float64 `json:"totalWeight"`
}

// ProductLookup resolves a product id to its current values
type ProductLookup func(id string) (model.Product, bool)

// Compute sums nutrition over the recipe's ingredients. An ingredient whose
// product cannot be resolved contributes zero, so a recipe referencing a
// later-deleted product still renders partially. The sum is
// order-independent.
func Compute(recipe model.Recipe, lookup ProductLookup) Facts {
	var calories, protein, fat, carbs, weight float64

	for _, ingredient := range recipe.Ingredients {
		product, ok := lookup(ingredient.ProductID)
		if !ok {
			continue
		}

		// amount counts units; the unit's gram value is itself per-unit
		grams := ingredient.Amount * ingredient.Unit.WeightInGrams

		calories += product.Calories * grams / 100
		protein += product.Protein * grams / 100
		fat += product.Fat * grams / 100
		carbs += product.Carbs * grams / 100
		weight += grams
	}

	return Facts{
		TotalCalories: round2(calories),
		TotalProtein:  round2(protein),
		TotalFat:      round2(fat),
		TotalCarbs:    round2(carbs),
		TotalWeight:   math.Round(weight),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
