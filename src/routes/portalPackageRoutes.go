package routes

import (
	"github.com/adset/vehicles-backend/src/controllers"
	"github.com/adset/vehicles-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPortalPackageRoutes(router *gin.Engine, service *services.PortalPackageService, vehicles *services.VehicleService) {
	controller := controllers.NewPortalPackageController(service, vehicles)

	packageGroup := router.Group("/portal-packages")
	{
		packageGroup.POST("", controller.SavePackage)
		packageGroup.POST("/bulk", controller.SaveBulkPackages)
		packageGroup.GET("/vehicle/:id", controller.GetVehiclePackages)
		packageGroup.DELETE("/:id", controller.DeletePackage)
	}
}
