package main

import (
	"log"
	"os"

	"github.com/adset/vehicles-backend/src/cache"
	"github.com/adset/vehicles-backend/src/db"
	"github.com/adset/vehicles-backend/src/logger"
	"github.com/adset/vehicles-backend/src/middleware"
	"github.com/adset/vehicles-backend/src/models"
	"github.com/adset/vehicles-backend/src/routes"
	"github.com/adset/vehicles-backend/src/seed"
	"github.com/adset/vehicles-backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := database.AutoMigrate(
		&models.VehicleModel{},
		&models.VehiclePhotoModel{},
		&models.OptionalModel{},
		&models.VehicleOptionalModel{},
		&models.VehiclePortalPackageModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Seed the optional-equipment catalog
	seed.Seed(database)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	zapLogger, err := logger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("Error building logger: %v\n", err)
	}
	defer zapLogger.Sync()

	// Gin router setup
	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger), gin.Recovery(), middleware.SetupCORS())

	// Services setup
	sharedCache := cache.New()
	vehicleService := services.NewVehicleService(database, sharedCache)
	optionalService := services.NewOptionalService(database, sharedCache)
	packageService := services.NewPortalPackageService(database, sharedCache)

	// Routes setup
	routes.SetupVehicleRoutes(router, vehicleService, optionalService)
	routes.SetupOptionalRoutes(router, optionalService)
	routes.SetupPortalPackageRoutes(router, packageService, vehicleService)

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
