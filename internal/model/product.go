package model

// Product is a nutrition record per 100 grams. A product stored in the
// user-override list under a catalog id represents that catalog entry as
// modified by the user; an id with no catalog match is a wholly user-created
// product.
type Product struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Category         string            `json:"category"`
	Calories         float64           `json:"calories"`
	Protein          float64           `json:"protein"`
	Fat              float64           `json:"fat"`
	Carbs            float64           `json:"carbs"`
	MeasurementUnits []MeasurementUnit `json:"measurementUnits"`
	// IsDeleted is a display flag computed during listing, never persisted
	IsDeleted bool `json:"isDeleted,omitempty"`
}

// RecipeIngredient references a product by id with an amount in the given
// unit. The reference may dangle if the product was removed later; consumers
// skip such ingredients.
type RecipeIngredient struct {
	ProductID string          `json:"productId"`
	Amount    float64         `json:"amount"`
	Unit      MeasurementUnit `json:"unit"`
}

// Recipe is a named ordered list of ingredients
type Recipe struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	// IsDeleted is a display flag computed during listing, never persisted
	IsDeleted bool `json:"isDeleted,omitempty"`
}
