package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/adset/vehicles-backend/src/cache"
	"github.com/adset/vehicles-backend/src/db"
	"github.com/adset/vehicles-backend/src/models"
	"github.com/adset/vehicles-backend/src/seed"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServices struct {
	db       *gorm.DB
	vehicles *VehicleService
	optional *OptionalService
	packages *PortalPackageService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vehicles_test.db")
	database, err := db.OpenSQLite(path)
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.VehicleModel{},
		&models.VehiclePhotoModel{},
		&models.OptionalModel{},
		&models.VehicleOptionalModel{},
		&models.VehiclePortalPackageModel{},
	)
	require.NoError(t, err)

	seed.Seed(database)

	shared := cache.New()
	return &testServices{
		db:       database,
		vehicles: NewVehicleService(database, shared),
		optional: NewOptionalService(database, shared),
		packages: NewPortalPackageService(database, shared),
	}
}

func intPtr(v int) *int { return &v }

func testVehicle(plate string, year int, registeredAt time.Time) *models.VehicleModel {
	return &models.VehicleModel{
		Make:         "Fiat",
		Model:        "Uno",
		Year:         year,
		Plate:        plate,
		Km:           intPtr(42000),
		Color:        "Prata",
		Price:        35000,
		RegisteredAt: registeredAt,
	}
}

func (ts *testServices) mustAdd(t *testing.T, vehicle *models.VehicleModel) *models.VehicleModel {
	t.Helper()
	created, err := ts.vehicles.AddVehicle(vehicle)
	require.NoError(t, err)
	return created
}
