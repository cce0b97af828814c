package mappers

import (
	"testing"
	"time"

	"github.com/adset/vehicles-backend/src/dtos"
	"github.com/adset/vehicles-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleToDTOFlattensOptionals(t *testing.T) {
	km := 50000
	registered := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	vehicle := &models.VehicleModel{
		ID:           7,
		Make:         "Volkswagen",
		Model:        "Gol",
		Year:         2019,
		Plate:        "GOL1A23",
		Km:           &km,
		Color:        "Branco",
		Price:        42000,
		RegisteredAt: registered,
		Optionals: []models.VehicleOptionalModel{
			{VehicleID: 7, OptionalID: 1, Optional: models.OptionalModel{ID: 1, Name: "Alarme"}},
			{VehicleID: 7, OptionalID: 3, Optional: models.OptionalModel{ID: 3, Name: "Airbag"}},
		},
		Packages: []models.VehiclePortalPackageModel{
			{ID: 11, VehicleID: 7, Portal: models.PortalICarros, Tier: models.TierDiamond},
		},
	}

	dto := VehicleToDTO(vehicle)

	assert.Equal(t, 7, dto.ID)
	assert.Equal(t, "GOL1A23", dto.Plate)
	require.Len(t, dto.Optionals, 2)
	assert.Equal(t, "Alarme", dto.Optionals[0].Name)
	assert.Equal(t, 3, dto.Optionals[1].ID)
	require.Len(t, dto.Packages, 1)
	assert.Equal(t, models.TierDiamond, dto.Packages[0].Tier)
}

// Mapping a payload to an entity and the entity back to a response must
// preserve every scalar field and the optional id set.
func TestCreateRoundTrip(t *testing.T) {
	km := 12345
	now := time.Now().UTC()

	payload := dtos.CreateVehicleDTO{
		Make:        "Chevrolet",
		Model:       "Onix",
		Year:        2022,
		Plate:       "ONX1B34",
		Km:          &km,
		Color:       "Preto",
		Price:       68000.50,
		OptionalIDs: []int{2, 4},
		Photos: []dtos.CreateVehiclePhotoDTO{
			{ImageBase64: "Zm90bw==", DisplayOrder: 1},
		},
	}

	vehicle := CreateDTOToVehicle(&payload, now)

	// Identity and timestamps are assigned by the repository, not the mapper
	assert.Zero(t, vehicle.ID)
	assert.True(t, vehicle.RegisteredAt.IsZero())
	assert.Nil(t, vehicle.LastUpdate)

	require.Len(t, vehicle.Photos, 1)
	assert.Equal(t, now, vehicle.Photos[0].UploadedAt)

	for i := range vehicle.Optionals {
		vehicle.Optionals[i].Optional = models.OptionalModel{
			ID:   vehicle.Optionals[i].OptionalID,
			Name: "whatever",
		}
	}

	dto := VehicleToDTO(vehicle)
	assert.Equal(t, payload.Make, dto.Make)
	assert.Equal(t, payload.Model, dto.Model)
	assert.Equal(t, payload.Year, dto.Year)
	assert.Equal(t, payload.Plate, dto.Plate)
	assert.Equal(t, payload.Km, dto.Km)
	assert.Equal(t, payload.Color, dto.Color)
	assert.Equal(t, payload.Price, dto.Price)

	ids := make([]int, 0, len(dto.Optionals))
	for _, optional := range dto.Optionals {
		ids = append(ids, optional.ID)
	}
	assert.ElementsMatch(t, payload.OptionalIDs, ids)
}

func TestApplyUpdateDTOTouchesOnlyScalars(t *testing.T) {
	registered := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	vehicle := &models.VehicleModel{
		ID:           3,
		Make:         "Fiat",
		Model:        "Uno",
		Year:         2015,
		Plate:        "UNO1234",
		Color:        "Prata",
		Price:        25000,
		RegisteredAt: registered,
		Photos:       []models.VehiclePhotoModel{{ID: 9}},
	}

	ApplyUpdateDTO(vehicle, &dtos.UpdateVehicleDTO{
		Make:  "Fiat",
		Model: "Argo",
		Year:  2021,
		Plate: "ARG1C23",
		Color: "Vermelho",
		Price: 61000,
	})

	assert.Equal(t, "Argo", vehicle.Model)
	assert.Equal(t, "ARG1C23", vehicle.Plate)
	assert.Equal(t, 3, vehicle.ID)
	assert.True(t, vehicle.RegisteredAt.Equal(registered))
	assert.Len(t, vehicle.Photos, 1)
}

func TestNewPhotosFromUpdateSkipsExisting(t *testing.T) {
	now := time.Now().UTC()
	existingID := 5

	photos := NewPhotosFromUpdate(2, []dtos.CreateVehiclePhotoDTO{
		{ID: &existingID, ImageBase64: "a2VwdA==", DisplayOrder: 1},
		{ImageBase64: "bmV3", DisplayOrder: 2},
	}, now)

	require.Len(t, photos, 1)
	assert.Equal(t, "bmV3", photos[0].ImageBase64)
	assert.Equal(t, 2, photos[0].VehicleID)
	assert.Equal(t, now, photos[0].UploadedAt)
}
