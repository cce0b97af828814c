package controllers

import (
	"fmt"
	"strconv"

	"github.com/adset/vehicles-backend/src/dtos"
	"github.com/adset/vehicles-backend/src/mappers"
	"github.com/adset/vehicles-backend/src/models"
	"github.com/adset/vehicles-backend/src/services"
	"github.com/gin-gonic/gin"
)

type PortalPackageController struct {
	service  *services.PortalPackageService
	vehicles *services.VehicleService
}

func NewPortalPackageController(service *services.PortalPackageService, vehicles *services.VehicleService) *PortalPackageController {
	return &PortalPackageController{service: service, vehicles: vehicles}
}

// SavePackage upserts the package for one (vehicle, portal) pair: 201 when a
// row was inserted, 200 when an existing one changed tier.
func (pc *PortalPackageController) SavePackage(c *gin.Context) {
	var payload dtos.SavePortalPackageDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if msg := validatePackagePayload(&payload); msg != "" {
		c.JSON(400, gin.H{"error": msg})
		return
	}

	if !pc.checkVehicle(c, payload.VehicleID) {
		return
	}

	saved, created, err := pc.service.Save(mappers.SaveDTOToPortalPackage(&payload))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	status := 200
	if created {
		status = 201
	}
	c.JSON(status, mappers.PortalPackageToDTO(saved))
}

func (pc *PortalPackageController) GetVehiclePackages(c *gin.Context) {
	vehicleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if !pc.checkVehicle(c, vehicleID) {
		return
	}

	packages, err := pc.service.GetByVehicle(vehicleID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	response := make([]dtos.PortalPackageDTO, 0, len(packages))
	for i := range packages {
		response = append(response, mappers.PortalPackageToDTO(&packages[i]))
	}
	c.JSON(200, response)
}

func (pc *PortalPackageController) DeletePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	deleted, err := pc.service.Delete(id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(404, gin.H{"error": fmt.Sprintf("Package with ID %d not found", id)})
		return
	}
	c.Status(204)
}

// SaveBulkPackages upserts every (vehicle, portal) pair of the batch in one
// transaction. Portals missing from the batch are left untouched.
func (pc *PortalPackageController) SaveBulkPackages(c *gin.Context) {
	var payload []dtos.SavePortalPackageDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if len(payload) == 0 {
		c.JSON(400, gin.H{"error": "No packages were submitted"})
		return
	}

	seen := make(map[int]bool)
	pkgs := make([]models.VehiclePortalPackageModel, 0, len(payload))
	for i := range payload {
		if msg := validatePackagePayload(&payload[i]); msg != "" {
			c.JSON(400, gin.H{"error": msg})
			return
		}
		if !seen[payload[i].VehicleID] {
			seen[payload[i].VehicleID] = true
			if !pc.checkVehicle(c, payload[i].VehicleID) {
				return
			}
		}
		pkgs = append(pkgs, *mappers.SaveDTOToPortalPackage(&payload[i]))
	}

	saved, err := pc.service.SaveBulk(pkgs)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	response := make([]dtos.PortalPackageDTO, 0, len(saved))
	for i := range saved {
		response = append(response, mappers.PortalPackageToDTO(&saved[i]))
	}
	c.JSON(200, response)
}

func (pc *PortalPackageController) checkVehicle(c *gin.Context, vehicleID int) bool {
	exists, err := pc.vehicles.Exists(vehicleID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return false
	}
	if !exists {
		c.JSON(404, gin.H{"error": fmt.Sprintf("Vehicle with ID %d not found", vehicleID)})
		return false
	}
	return true
}

func validatePackagePayload(payload *dtos.SavePortalPackageDTO) string {
	if !payload.Portal.Valid() {
		return fmt.Sprintf("Invalid portal %d", payload.Portal)
	}
	if !payload.Tier.Valid() {
		return fmt.Sprintf("Invalid package tier %d", payload.Tier)
	}
	return ""
}
