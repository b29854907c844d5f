package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	cartAPI "github.com/ridloal/product-dashboard-api/internal/cart/api"
	cartCache "github.com/ridloal/product-dashboard-api/internal/cart/cache"
	cartRepo "github.com/ridloal/product-dashboard-api/internal/cart/repository"
	cartService "github.com/ridloal/product-dashboard-api/internal/cart/service"
	catalogAPI "github.com/ridloal/product-dashboard-api/internal/catalog/api"
	catalogRepo "github.com/ridloal/product-dashboard-api/internal/catalog/repository"
	catalogService "github.com/ridloal/product-dashboard-api/internal/catalog/service"
	"github.com/ridloal/product-dashboard-api/internal/platform/config"
	"github.com/ridloal/product-dashboard-api/internal/platform/database"
	"github.com/ridloal/product-dashboard-api/internal/platform/health"
	"github.com/ridloal/product-dashboard-api/internal/platform/logger"
)

const version = "1.2.0"

func main() {
	// Prices and totals go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	// Load Config
	config.LoadEnv()
	dbCfg := config.LoadDBConfig()
	serverCfg := config.LoadServerConfig("8080")
	redisCfg := config.LoadRedisConfig()
	catalogCfg := config.LoadCatalogConfig()
	cartCfg := config.LoadCartConfig()

	logger.Info("Starting Dashboard Service...")

	// Setup Database
	db, err := database.Connect(dbCfg.DSN)
	if err != nil {
		logger.Error("Failed to connect to database for Dashboard Service", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(db, dbCfg.MigrationsDir); err != nil {
		logger.Error("Failed to run database migrations", err)
		return
	}

	// Cart view cache is optional; without REDIS_ADDR every read hits postgres.
	var viewCache cartCache.CartCache
	if redisCfg.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisCfg.Addr})
		viewCache = cartCache.NewRedisCache(client)
		logger.Info("Cart view cache enabled at " + redisCfg.Addr)
	}

	// Setup Dependencies
	catRepository := catalogRepo.NewPostgresCatalogRepository(db)
	catService := catalogService.NewCatalogService(catRepository, catalogCfg.DefaultPageSize, catalogCfg.MaxPageSize)
	productHandler := catalogAPI.NewProductHandler(catService)

	crtRepository := cartRepo.NewPostgresCartRepository(db)
	crtService := cartService.NewCartService(crtRepository, catRepository, viewCache)
	cartHandler := cartAPI.NewCartHandler(crtService)

	sweeper := cartService.NewRetentionSweeper(crtRepository, cartCfg.RetentionDays, cartCfg.SweepSpec)
	if err := sweeper.Start(); err != nil {
		logger.Error("Failed to start cart retention sweeper", err)
		return
	}
	defer sweeper.Stop()

	healthHandler := health.NewHealthHandler(db, version)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false

	api := router.Group("/api")
	productHandler.RegisterRoutes(api)
	cartHandler.RegisterRoutes(api)
	healthHandler.RegisterRoutes(api)

	logger.Info("Dashboard Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Dashboard Service server", err)
	}
}
