package mappers

import (
	"time"

	"github.com/adset/vehicles-backend/src/dtos"
	"github.com/adset/vehicles-backend/src/models"
)

// VehicleToDTO converts a persisted vehicle aggregate into its wire shape.
// Optional link rows are flattened into the referenced catalog entries.
func VehicleToDTO(v *models.VehicleModel) *dtos.VehicleDTO {
	dto := &dtos.VehicleDTO{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Plate:        v.Plate,
		Km:           v.Km,
		Color:        v.Color,
		Price:        v.Price,
		RegisteredAt: v.RegisteredAt,
		UpdatedAt:    v.LastUpdate,
		Photos:       make([]dtos.VehiclePhotoDTO, 0, len(v.Photos)),
		Optionals:    make([]dtos.OptionalDTO, 0, len(v.Optionals)),
		Packages:     make([]dtos.PortalPackageDTO, 0, len(v.Packages)),
	}

	for _, photo := range v.Photos {
		dto.Photos = append(dto.Photos, dtos.VehiclePhotoDTO{
			ID:           photo.ID,
			ImageBase64:  photo.ImageBase64,
			FileName:     photo.FileName,
			DisplayOrder: photo.DisplayOrder,
			UploadedAt:   photo.UploadedAt,
		})
	}

	for _, link := range v.Optionals {
		dto.Optionals = append(dto.Optionals, dtos.OptionalDTO{
			ID:   link.Optional.ID,
			Name: link.Optional.Name,
		})
	}

	for _, pkg := range v.Packages {
		dto.Packages = append(dto.Packages, PortalPackageToDTO(&pkg))
	}

	return dto
}

// CreateDTOToVehicle builds a new vehicle aggregate from a create payload.
// ID and timestamps are intentionally left unset: the id comes from the
// database and the registration timestamp from the repository. Photos are
// stamped with the given upload time.
func CreateDTOToVehicle(dto *dtos.CreateVehicleDTO, uploadedAt time.Time) *models.VehicleModel {
	vehicle := &models.VehicleModel{
		Make:  dto.Make,
		Model: dto.Model,
		Year:  dto.Year,
		Plate: dto.Plate,
		Km:    dto.Km,
		Color: dto.Color,
		Price: dto.Price,
	}

	for _, id := range dto.OptionalIDs {
		vehicle.Optionals = append(vehicle.Optionals, models.VehicleOptionalModel{OptionalID: id})
	}

	for _, photo := range dto.Photos {
		vehicle.Photos = append(vehicle.Photos, models.VehiclePhotoModel{
			ImageBase64:  photo.ImageBase64,
			FileName:     photo.FileName,
			DisplayOrder: photo.DisplayOrder,
			UploadedAt:   uploadedAt,
		})
	}

	return vehicle
}

// ApplyUpdateDTO copies the scalar fields of an update payload onto an
// existing vehicle. Collections are handled separately by the repository.
func ApplyUpdateDTO(vehicle *models.VehicleModel, dto *dtos.UpdateVehicleDTO) {
	vehicle.Make = dto.Make
	vehicle.Model = dto.Model
	vehicle.Year = dto.Year
	vehicle.Plate = dto.Plate
	vehicle.Km = dto.Km
	vehicle.Color = dto.Color
	vehicle.Price = dto.Price
}

// NewPhotosFromUpdate returns photo entities for the payload photos that carry
// no pre-existing id, stamped with the given upload time.
func NewPhotosFromUpdate(vehicleID int, photos []dtos.CreateVehiclePhotoDTO, uploadedAt time.Time) []models.VehiclePhotoModel {
	var out []models.VehiclePhotoModel
	for _, photo := range photos {
		if photo.ID != nil && *photo.ID > 0 {
			continue
		}
		out = append(out, models.VehiclePhotoModel{
			VehicleID:    vehicleID,
			ImageBase64:  photo.ImageBase64,
			FileName:     photo.FileName,
			DisplayOrder: photo.DisplayOrder,
			UploadedAt:   uploadedAt,
		})
	}
	return out
}

func PortalPackageToDTO(p *models.VehiclePortalPackageModel) dtos.PortalPackageDTO {
	return dtos.PortalPackageDTO{
		ID:        p.ID,
		VehicleID: p.VehicleID,
		Portal:    p.Portal,
		Tier:      p.Tier,
	}
}

func SaveDTOToPortalPackage(dto *dtos.SavePortalPackageDTO) *models.VehiclePortalPackageModel {
	return &models.VehiclePortalPackageModel{
		VehicleID: dto.VehicleID,
		Portal:    dto.Portal,
		Tier:      dto.Tier,
	}
}
