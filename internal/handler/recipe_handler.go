package handler

import (
	"net/http"
	"strconv"
	"strings"

	"calorie-service/internal/model"
	"calorie-service/internal/nutrition"
	"calorie-service/pkg/logger"
	"calorie-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListRecipes handles retrieving all recipes with optional filtering
func ListRecipes(c echo.Context) error {
	log := logger.FromContext(c)

	includeDeleted := false
	if v := c.QueryParam("include_deleted"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			log.Warn("Invalid include_deleted parameter", zap.String("value", v), zap.Error(err))
		} else {
			includeDeleted = parsed
		}
	}

	var result []model.Recipe
	if query := c.QueryParam("q"); query != "" {
		log.Info("Searching recipes", zap.String("query", query))
		result = recipes.Search(query)
	} else {
		result = recipes.List(includeDeleted)
	}

	prometheus.RecordRecipeOperation("list")
	log.Info("Recipes retrieved successfully", zap.Int("count", len(result)))
	return c.JSON(http.StatusOK, result)
}

// GetRecipe handles retrieving a single recipe by ID
func GetRecipe(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	recipe, ok := recipes.Get(id)
	if !ok {
		log.Warn("Recipe not found", zap.String("recipe_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Recipe not found",
		})
	}

	prometheus.RecordRecipeOperation("get")
	return c.JSON(http.StatusOK, recipe)
}

// GetOriginalRecipe returns the unmodified catalog version of a recipe
func GetOriginalRecipe(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	original, ok := recipes.GetOriginal(id)
	if !ok {
		log.Warn("No catalog original for recipe", zap.String("recipe_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Recipe has no catalog original",
		})
	}

	return c.JSON(http.StatusOK, original)
}

// GetRecipeNutrition computes nutrition facts for a recipe from its current
// ingredient list. Ingredients referencing unknown products are skipped.
func GetRecipeNutrition(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	recipe, ok := recipes.Get(id)
	if !ok {
		log.Warn("Recipe not found for nutrition", zap.String("recipe_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Recipe not found",
		})
	}

	facts := nutrition.Compute(recipe, products.Get)
	prometheus.RecordRecipeOperation("nutrition")
	log.Info("Computed recipe nutrition",
		zap.String("recipe_id", id),
		zap.Float64("calories", facts.TotalCalories),
		zap.Float64("weight", facts.TotalWeight))
	return c.JSON(http.StatusOK, facts)
}

// CreateRecipe handles creating a new user recipe
func CreateRecipe(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new recipe")

	var req model.Recipe
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if fields := validateRecipe(req); fields != nil {
		log.Warn("Recipe validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	created := recipes.Create(req)
	if created == nil {
		log.Error("Failed to create recipe", zap.String("name", req.Name))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create recipe",
		})
	}

	prometheus.RecordRecipeOperation("create")
	log.Info("Recipe created successfully",
		zap.String("recipe_id", created.ID),
		zap.String("name", created.Name))
	return c.JSON(http.StatusCreated, created)
}

// UpdateRecipe handles updating a recipe, creating an override record for
// catalog recipes on their first edit
func UpdateRecipe(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Updating recipe", zap.String("recipe_id", id))

	var req model.Recipe
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("recipe_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if fields := validateRecipe(req); fields != nil {
		log.Warn("Recipe validation failed",
			zap.String("recipe_id", id),
			zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	updated := recipes.Update(id, req)
	if updated == nil {
		if _, ok := recipes.Get(id); !ok {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Recipe not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update recipe",
		})
	}

	prometheus.RecordRecipeOperation("update")
	log.Info("Recipe updated successfully",
		zap.String("recipe_id", id),
		zap.String("name", updated.Name))
	return c.JSON(http.StatusOK, updated)
}

// DeleteRecipe hides a catalog recipe or removes a user-created one
func DeleteRecipe(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting recipe", zap.String("recipe_id", id))

	if !recipes.Delete(id) {
		log.Error("Failed to delete recipe", zap.String("recipe_id", id))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete recipe",
		})
	}

	prometheus.RecordRecipeOperation("delete")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Recipe deleted successfully",
	})
}

// ResetRecipe discards the user override of a catalog recipe
func ResetRecipe(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Resetting recipe to catalog values", zap.String("recipe_id", id))

	if recipes.IsUserCreated(id) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "User-created recipes have no catalog original",
		})
	}

	if !recipes.Reset(id) {
		log.Error("Failed to reset recipe", zap.String("recipe_id", id))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to reset recipe",
		})
	}

	prometheus.RecordRecipeOperation("reset")
	recipe, _ := recipes.Get(id)
	return c.JSON(http.StatusOK, recipe)
}

// RestoreRecipe removes the deletion marker of a catalog recipe
func RestoreRecipe(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Restoring deleted recipe", zap.String("recipe_id", id))

	if recipes.IsUserCreated(id) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "User-created recipes cannot be restored",
		})
	}

	if !recipes.Restore(id) {
		log.Error("Failed to restore recipe", zap.String("recipe_id", id))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to restore recipe",
		})
	}

	prometheus.RecordRecipeOperation("restore")
	recipe, _ := recipes.Get(id)
	return c.JSON(http.StatusOK, recipe)
}

// validateRecipe checks the writable fields of a recipe request
func validateRecipe(r model.Recipe) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "name is required"
	}
	for i, ing := range r.Ingredients {
		prefix := "ingredients[" + strconv.Itoa(i) + "]"
		if ing.ProductID == "" {
			fields[prefix+".productId"] = "productId is required"
		}
		if ing.Amount <= 0 {
			fields[prefix+".amount"] = "amount must be greater than zero"
		}
		if !model.ValidUnitType(ing.Unit.Type) {
			fields[prefix+".unit.type"] = "unknown unit type"
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
