package nutrition

import (
	"testing"

	"calorie-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(products ...model.Product) ProductLookup {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(id string) (model.Product, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

func TestComputeSingleIngredient(t *testing.T) {
	product := model.Product{
		ID:       "p1",
		Name:     "Тестовый продукт",
		Calories: 100,
		Protein:  5,
		Fat:      3,
		Carbs:    10,
	}
	recipe := model.Recipe{
		Ingredients: []model.RecipeIngredient{
			{ProductID: "p1", Amount: 2, Unit: model.MeasurementUnit{Type: model.UnitPieces, WeightInGrams: 50, DisplayName: "1шт"}},
		},
	}

	facts := Compute(recipe, lookupFrom(product))

	assert.Equal(t, 100.0, facts.TotalCalories)
	assert.Equal(t, 5.0, facts.TotalProtein)
	assert.Equal(t, 3.0, facts.TotalFat)
	assert.Equal(t, 10.0, facts.TotalCarbs)
	assert.Equal(t, 100.0, facts.TotalWeight)
}

func TestComputeSkipsUnresolvedProducts(t *testing.T) {
	product := model.Product{ID: "p1", Calories: 200}
	recipe := model.Recipe{
		Ingredients: []model.RecipeIngredient{
			{ProductID: "p1", Amount: 1, Unit: model.Grams100},
			{ProductID: "missing", Amount: 5, Unit: model.Grams100},
		},
	}

	facts := Compute(recipe, lookupFrom(product))

	assert.Equal(t, 200.0, facts.TotalCalories)
	assert.Equal(t, 100.0, facts.TotalWeight)
}

func TestComputeEmptyRecipe(t *testing.T) {
	facts := Compute(model.Recipe{}, lookupFrom())

	assert.Equal(t, Facts{}, facts)
}

func TestComputeRounding(t *testing.T) {
	product := model.Product{ID: "p1", Calories: 33.333, Protein: 1.111}
	recipe := model.Recipe{
		Ingredients: []model.RecipeIngredient{
			{ProductID: "p1", Amount: 1, Unit: model.MeasurementUnit{Type: model.UnitGrams, WeightInGrams: 33.5, DisplayName: "33.5г"}},
		},
	}

	facts := Compute(recipe, lookupFrom(product))

	assert.Equal(t, 11.17, facts.TotalCalories)
	assert.Equal(t, 0.37, facts.TotalProtein)
	// Weight rounds to the nearest gram
	assert.Equal(t, 34.0, facts.TotalWeight)
}

func TestComputeOrderIndependent(t *testing.T) {
	a := model.Product{ID: "a", Calories: 123.45, Protein: 6.7}
	b := model.Product{ID: "b", Calories: 98.76, Protein: 5.4}
	forward := model.Recipe{
		Ingredients: []model.RecipeIngredient{
			{ProductID: "a", Amount: 1.5, Unit: model.Grams100},
			{ProductID: "b", Amount: 0.7, Unit: model.Grams100},
		},
	}
	reverse := model.Recipe{
		Ingredients: []model.RecipeIngredient{
			{ProductID: "b", Amount: 0.7, Unit: model.Grams100},
			{ProductID: "a", Amount: 1.5, Unit: model.Grams100},
		},
	}

	lookup := lookupFrom(a, b)
	first := Compute(forward, lookup)
	second := Compute(reverse, lookup)

	assert.InDelta(t, first.TotalCalories, second.TotalCalories, 0.01)
	assert.InDelta(t, first.TotalProtein, second.TotalProtein, 0.01)
	assert.Equal(t, first.TotalWeight, second.TotalWeight)
}
