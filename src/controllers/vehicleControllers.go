package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adset/vehicles-backend/src/dtos"
	"github.com/adset/vehicles-backend/src/mappers"
	"github.com/adset/vehicles-backend/src/services"
	"github.com/adset/vehicles-backend/src/validators"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VehicleController struct {
	service   *services.VehicleService
	optionals *services.OptionalService
}

func NewVehicleController(service *services.VehicleService, optionals *services.OptionalService) *VehicleController {
	return &VehicleController{service: service, optionals: optionals}
}

func (vc *VehicleController) GetAllVehicles(c *gin.Context) {
	vehicles, err := vc.service.GetAllVehicles()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	response := make([]*dtos.VehicleDTO, 0, len(vehicles))
	for i := range vehicles {
		response = append(response, mappers.VehicleToDTO(&vehicles[i]))
	}
	c.JSON(200, response)
}

func (vc *VehicleController) GetVehicleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	vehicle, err := vc.service.GetVehicleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": fmt.Sprintf("Vehicle with ID %d not found", id)})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, mappers.VehicleToDTO(vehicle))
}

func (vc *VehicleController) SearchVehicles(c *gin.Context) {
	filter, err := parseVehicleFilter(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	vehicles, err := vc.service.SearchVehicles(filter)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	response := make([]*dtos.VehicleDTO, 0, len(vehicles))
	for i := range vehicles {
		response = append(response, mappers.VehicleToDTO(&vehicles[i]))
	}
	c.JSON(200, response)
}

func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var payload dtos.CreateVehicleDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if errs := validators.ValidateCreateVehicle(&payload); len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	taken, err := vc.service.PlateExists(payload.Plate, nil)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if taken {
		c.JSON(400, gin.H{"error": fmt.Sprintf("A vehicle with plate %s already exists", payload.Plate)})
		return
	}

	if !vc.checkOptionals(c, payload.OptionalIDs) {
		return
	}

	vehicle := mappers.CreateDTOToVehicle(&payload, time.Now().UTC())
	created, err := vc.service.AddVehicle(vehicle)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, mappers.VehicleToDTO(created))
}

func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var payload dtos.UpdateVehicleDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if errs := validators.ValidateUpdateVehicle(&payload); len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	vehicle, err := vc.service.GetVehicleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": fmt.Sprintf("Vehicle with ID %d not found", id)})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	taken, err := vc.service.PlateExists(payload.Plate, &id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if taken {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Another vehicle with plate %s already exists", payload.Plate)})
		return
	}

	if !vc.checkOptionals(c, payload.OptionalIDs) {
		return
	}

	mappers.ApplyUpdateDTO(vehicle, &payload)
	newPhotos := mappers.NewPhotosFromUpdate(id, payload.Photos, time.Now().UTC())

	updated, err := vc.service.UpdateVehicle(vehicle, payload.OptionalIDs, newPhotos, payload.PhotosToRemove)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, mappers.VehicleToDTO(updated))
}

func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	deleted, err := vc.service.DeleteVehicle(id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(404, gin.H{"error": fmt.Sprintf("Vehicle with ID %d not found", id)})
		return
	}
	c.Status(204)
}

func (vc *VehicleController) GetStats(c *gin.Context) {
	stats, err := vc.service.GetStats()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, stats)
}

func (vc *VehicleController) ExportVehicles(c *gin.Context) {
	f, err := vc.service.ExportVehicles()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="vehicles.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(500, gin.H{"error": "Could not write workbook"})
	}
}

// checkOptionals rejects the request when any referenced optional id has no
// catalog entry. It reports whether the request may proceed.
func (vc *VehicleController) checkOptionals(c *gin.Context, ids []int) bool {
	missing, err := vc.optionals.MissingOptionals(ids)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return false
	}
	if len(missing) > 0 {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Optional with ID %d not found", missing[0])})
		return false
	}
	return true
}

func parseVehicleFilter(c *gin.Context) (*services.VehicleFilter, error) {
	filter := &services.VehicleFilter{
		Plate:  c.Query("plate"),
		Make:   c.Query("make"),
		Model:  c.Query("model"),
		Color:  c.Query("color"),
		Photos: c.Query("photos"),
	}

	if filter.Photos != "" && filter.Photos != "com" && filter.Photos != "sem" {
		return nil, fmt.Errorf("invalid photos filter %q, expected com or sem", filter.Photos)
	}

	if raw := c.Query("optionals"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				filter.Optionals = append(filter.Optionals, name)
			}
		}
	}

	for param, target := range map[string]**int{
		"yearMin": &filter.YearMin,
		"yearMax": &filter.YearMax,
	} {
		if raw := c.Query(param); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid %s parameter", param)
			}
			*target = &value
		}
	}

	for param, target := range map[string]**float64{
		"priceMin": &filter.PriceMin,
		"priceMax": &filter.PriceMax,
	} {
		if raw := c.Query(param); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s parameter", param)
			}
			*target = &value
		}
	}

	return filter, nil
}
