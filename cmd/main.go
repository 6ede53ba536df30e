package main

import (
	"calorie-service/internal/handler"
	mid "calorie-service/internal/middleware"
	"calorie-service/internal/reconcile"
	"calorie-service/pkg/config"
	"calorie-service/pkg/database"
	"calorie-service/pkg/jwtutil"
	"calorie-service/pkg/kvstore"
	"calorie-service/pkg/logger"
	"calorie-service/pkg/oauth"
	"calorie-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Just log a warning, don't fail if .env file is not found
		// The fallback values will be used in case env vars are not set
	}

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting calorie-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Select the key-value store backend
	var store kvstore.Store
	switch appConfig.Store.Backend {
	case "postgres":
		db, err := database.InitDB(&appConfig.Database)
		if err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		store, err = kvstore.NewGormStore(db)
		if err != nil {
			log.Fatal("Failed to initialize store", zap.Error(err))
		}
		log.Info("Using postgres store backend")
	default:
		store = kvstore.NewMemory()
		log.Info("Using in-memory store backend")
	}

	// Initialize reconciliation services and handlers
	productService := reconcile.NewProductService(store, log)
	recipeService := reconcile.NewRecipeService(store, log)
	handler.Init(productService, recipeService)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/hello", handler.Hello)

	// Pick the authentication strategy: remote introspection when an OAuth
	// service is configured, local JWT validation otherwise
	authMiddleware := mid.AuthMiddleware
	if appConfig.OAuth.Enabled {
		oauthClient := oauth.NewClient(
			appConfig.OAuth.BaseURL,
			appConfig.OAuth.ClientID,
			appConfig.OAuth.ClientSecret,
			log)
		authMiddleware = oauth.AuthMiddleware(oauthClient)
		log.Info("Using OAuth token introspection",
			zap.String("oauth_base_url", appConfig.OAuth.BaseURL))
	}

	// Product API routes
	productAPI := e.Group("/api/products", authMiddleware)
	productAPI.GET("", handler.ListProducts)
	productAPI.GET("/:id", handler.GetProduct)
	productAPI.GET("/:id/original", handler.GetOriginalProduct)
	productAPI.POST("", handler.CreateProduct)
	productAPI.PUT("/:id", handler.UpdateProduct)
	productAPI.DELETE("/:id", handler.DeleteProduct)
	productAPI.POST("/:id/reset", handler.ResetProduct)
	productAPI.POST("/:id/restore", handler.RestoreProduct)

	// Recipe API routes
	recipeAPI := e.Group("/api/recipes", authMiddleware)
	recipeAPI.GET("", handler.ListRecipes)
	recipeAPI.GET("/:id", handler.GetRecipe)
	recipeAPI.GET("/:id/original", handler.GetOriginalRecipe)
	recipeAPI.GET("/:id/nutrition", handler.GetRecipeNutrition)
	recipeAPI.POST("", handler.CreateRecipe)
	recipeAPI.PUT("/:id", handler.UpdateRecipe)
	recipeAPI.DELETE("/:id", handler.DeleteRecipe)
	recipeAPI.POST("/:id/reset", handler.ResetRecipe)
	recipeAPI.POST("/:id/restore", handler.RestoreRecipe)

	// Category API routes
	categoryAPI := e.Group("/api/categories", authMiddleware)
	categoryAPI.GET("", handler.ListCategories)

	// Migration report routes
	migrationAPI := e.Group("/api/migration-report", authMiddleware)
	migrationAPI.GET("", handler.GetMigrationReport)
	migrationAPI.DELETE("", handler.ClearMigrationReport)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
