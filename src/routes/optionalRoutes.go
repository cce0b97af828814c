package routes

import (
	"github.com/adset/vehicles-backend/src/controllers"
	"github.com/adset/vehicles-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupOptionalRoutes(router *gin.Engine, service *services.OptionalService) {
	controller := controllers.NewOptionalController(service)

	router.GET("/optionals", controller.GetAllOptionals)
}
