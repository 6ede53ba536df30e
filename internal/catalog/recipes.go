package catalog

import "calorie-service/internal/model"

// Recipes is the code-shipped recipe database. Ingredient product references
// may dangle when a product is later dropped from the catalog; consumers skip
// such ingredients.
var Recipes = []model.Recipe{
	{
		ID:          "550e8400-e29b-41d4-a716-446655440001",
		Name:        "Суп-пюре из кабачка",
		Description: "Нежный суп-пюре из кабачков со сливками",
		Ingredients: []model.RecipeIngredient{
			{ProductID: "550e8400-e29b-41d4-a716-446655440060", Amount: 6, Unit: model.Grams100},  // Масло подсолнечное
			{ProductID: "550e8400-e29b-41d4-a716-446655440062", Amount: 13, Unit: model.Grams100}, // Масло сливочное
			{ProductID: "550e8400-e29b-41d4-a716-446655440041", Amount: 34, Unit: model.Grams100}, // Лук репчатый
			{ProductID: "550e8400-e29b-41d4-a716-446655440042", Amount: 6, Unit: model.Grams100},  // Чеснок
			{ProductID: "550e8400-e29b-41d4-a716-446655440033", Amount: 97, Unit: model.Grams100}, // Картофель отварной
			{ProductID: "550e8400-e29b-41d4-a716-446655440063", Amount: 461, Unit: model.Grams100}, // Кабачки
			{ProductID: "550e8400-e29b-41d4-a716-446655440064", Amount: 45, Unit: model.Grams100},  // Сливки 33%
		},
	},
	{
		ID:          "550e8400-e29b-41d4-a716-446655440002",
		Name:        "Бутерброды с печенью трески x2",
		Description: "Питательные бутерброды с печенью трески и яйцом",
		Ingredients: []model.RecipeIngredient{
			{ProductID: "550e8400-e29b-41d4-a716-446655440066", Amount: 2, Unit: model.MeasurementUnit{Type: model.UnitPieces, WeightInGrams: 8, DisplayName: "1 шт"}}, // Хлебцы цельнозерновые
			{ProductID: "550e8400-e29b-41d4-a716-446655440065", Amount: 40, Unit: model.Grams100},    // Печень трески
			{ProductID: "550e8400-e29b-41d4-a716-446655440025", Amount: 1, Unit: model.PieceMedium},  // Яйцо куриное
			{ProductID: "550e8400-e29b-41d4-a716-446655440067", Amount: 40, Unit: model.Grams100},    // Огурцы свежие
			{ProductID: "550e8400-e29b-41d4-a716-446655440068", Amount: 10, Unit: model.Grams100},    // Лук зеленый
		},
	},
}
