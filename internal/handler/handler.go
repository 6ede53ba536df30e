package handler

import (
	"calorie-service/internal/reconcile"
)

var (
	products *reconcile.ProductService
	recipes  *reconcile.RecipeService
)

// Init wires the reconciliation services the handlers operate on
func Init(productService *reconcile.ProductService, recipeService *reconcile.RecipeService) {
	products = productService
	recipes = recipeService
}
