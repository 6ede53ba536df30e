package handler

import (
	"net/http"
	"strconv"

	"calorie-service/internal/model"
	"calorie-service/pkg/logger"
	"calorie-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListProducts handles retrieving all products with optional filtering
func ListProducts(c echo.Context) error {
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

	var result []model.Product
	if query := c.QueryParam("q"); query != "" {
		log.Info("Searching products", zap.String("query", query))
		result = products.Search(query)
	} else {
		result = products.List(includeDeleted)
	}

	if category := c.QueryParam("category"); category != "" {
		if !model.ValidCategory(category) {
			log.Warn("Unknown category filter", zap.String("category", category))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Unknown category",
			})
		}
		filtered := make([]model.Product, 0, len(result))
		for _, p := range result {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	prometheus.RecordProductOperation("list")
	log.Info("Products retrieved successfully", zap.Int("count", len(result)))
	return c.JSON(http.StatusOK, result)
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	product, ok := products.Get(id)
	if !ok {
		log.Warn("Product not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	prometheus.RecordProductOperation("get")
	return c.JSON(http.StatusOK, product)
}

// GetOriginalProduct returns the unmodified catalog version of a product
func GetOriginalProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	original, ok := products.GetOriginal(id)
	if !ok {
		log.Warn("No catalog original for product", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product has no catalog original",
		})
	}

	return c.JSON(http.StatusOK, original)
}

// CreateProduct handles creating a new user product
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")

	var req model.Product
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if fields := model.ValidateProduct(req); fields != nil {
		log.Warn("Product validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	created := products.Create(req)
	if created == nil {
		log.Error("Failed to create product", zap.String("name", req.Name))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created successfully",
		zap.String("product_id", created.ID),
		zap.String("name", created.Name))
	return c.JSON(http.StatusCreated, created)
}

// UpdateProduct handles updating a product, creating an override record for
// catalog products on their first edit
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Updating product", zap.String("product_id", id))

	var req model.Product
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if fields := model.ValidateProduct(req); fields != nil {
		log.Warn("Product validation failed",
			zap.String("product_id", id),
			zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	updated := products.Update(id, req)
	if updated == nil {
		if _, ok := products.Get(id); !ok {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Product not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}

	prometheus.RecordProductOperation("update")
	log.Info("Product updated successfully",
		zap.String("product_id", id),
		zap.String("name", updated.Name))
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct hides a catalog product or removes a user-created one
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting product", zap.String("product_id", id))

	if !products.Delete(id) {
		log.Error("Failed to delete product", zap.String("product_id", id))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}

	prometheus.RecordProductOperation("delete")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted successfully",
	})
}

// ResetProduct discards the user override of a catalog product
func ResetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Resetting product to catalog values", zap.String("product_id", id))

	if products.IsUserCreated(id) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "User-created products have no catalog original",
		})
	}

	if !products.Reset(id) {
		log.Error("Failed to reset product", zap.String("product_id", id))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to reset product",
		})
	}

	prometheus.RecordProductOperation("reset")
	product, _ := products.Get(id)
	return c.JSON(http.StatusOK, product)
}

// RestoreProduct removes the deletion marker of a catalog product
func RestoreProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Restoring deleted product", zap.String("product_id", id))

	if products.IsUserCreated(id) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "User-created products cannot be restored",
		})
	}

	if !products.Restore(id) {
		log.Error("Failed to restore product", zap.String("product_id", id))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to restore product",
		})
	}

	prometheus.RecordProductOperation("restore")
	product, _ := products.Get(id)
	return c.JSON(http.StatusOK, product)
}
