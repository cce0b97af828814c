package controllers

import (
	"github.com/adset/vehicles-backend/src/dtos"
	"github.com/adset/vehicles-backend/src/services"
	"github.com/gin-gonic/gin"
)

type OptionalController struct {
	service *services.OptionalService
}

func NewOptionalController(service *services.OptionalService) *OptionalController {
	return &OptionalController{service: service}
}

func (oc *OptionalController) GetAllOptionals(c *gin.Context) {
	optionals, err := oc.service.GetAllOptionals()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	response := make([]dtos.OptionalDTO, 0, len(optionals))
	for _, optional := range optionals {
		response = append(response, dtos.OptionalDTO{ID: optional.ID, Name: optional.Name})
	}
	c.JSON(200, response)
}
