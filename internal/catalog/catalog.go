// Package catalog holds the immutable code-shipped product and recipe
// databases. Entries are created at build time and never deleted; the
// reconciliation engine layers user overrides and deletion markers on top.
package catalog

import "calorie-service/internal/model"

var (
	productIndex = buildProductIndex()
	recipeIndex  = buildRecipeIndex()
)

func buildProductIndex() map[string]int {
	index := make(map[string]int, len(Products))
	for i, p := range Products {
		index[p.ID] = i
	}
	return index
}

func buildRecipeIndex() map[string]int {
	index := make(map[string]int, len(Recipes))
	for i, r := range Recipes {
		index[r.ID] = i
	}
	return index
}

// ProductByID returns a copy of the catalog product with the given id
func ProductByID(id string) (model.Product, bool) {
	i, ok := productIndex[id]
	if !ok {
		return model.Product{}, false
	}
	return Products[i], true
}

// RecipeByID returns a copy of the catalog recipe with the given id
func RecipeByID(id string) (model.Recipe, bool) {
	i, ok := recipeIndex[id]
	if !ok {
		return model.Recipe{}, false
	}
	return Recipes[i], true
}

// HasProduct reports whether id belongs to a catalog product
func HasProduct(id string) bool {
	_, ok := productIndex[id]
	return ok
}

// HasRecipe reports whether id belongs to a catalog recipe
func HasRecipe(id string) bool {
	_, ok := recipeIndex[id]
	return ok
}
