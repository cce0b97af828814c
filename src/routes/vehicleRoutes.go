package routes

import (
	"github.com/adset/vehicles-backend/src/controllers"
	"github.com/adset/vehicles-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupVehicleRoutes(router *gin.Engine, service *services.VehicleService, optionals *services.OptionalService) {
	controller := controllers.NewVehicleController(service, optionals)

	vehicleGroup := router.Group("/vehicles")
	{
		// CRUD
		vehicleGroup.GET("", controller.GetAllVehicles)
		vehicleGroup.GET("/:id", controller.GetVehicleByID)
		vehicleGroup.POST("", controller.CreateVehicle)
		vehicleGroup.PUT("/:id", controller.UpdateVehicle)
		vehicleGroup.DELETE("/:id", controller.DeleteVehicle)

		// Filtered listing and inventory views
		vehicleGroup.GET("/search", controller.SearchVehicles)
		vehicleGroup.GET("/stats", controller.GetStats)
		vehicleGroup.GET("/export", controller.ExportVehicles)
	}
}
