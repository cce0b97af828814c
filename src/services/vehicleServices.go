package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adset/vehicles-backend/src/cache"
	"github.com/adset/vehicles-backend/src/dtos"
	"github.com/adset/vehicles-backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VehicleFilter holds the optional search predicates. A nil pointer or empty
// string means "no restriction on that field", which is different from
// matching an empty value.
type VehicleFilter struct {
	Plate     string
	Make      string
	Model     string
	Color     string
	YearMin   *int
	YearMax   *int
	PriceMin  *float64
	PriceMax  *float64
	Optionals []string
	// Photos is "com" (only vehicles with photos), "sem" (only without) or
	// empty for no restriction.
	Photos string
}

type VehicleService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewVehicleService(db *gorm.DB, c *cache.Cache) *VehicleService {
	return &VehicleService{db: db, cache: c}
}

// withAssociations eagerly loads the full aggregate: photos, optional links
// with their catalog entries resolved, and portal packages.
func (s *VehicleService) withAssociations(q *gorm.DB) *gorm.DB {
	return q.Preload("Photos").
		Preload("Optionals.Optional").
		Preload("Packages")
}

// GetAllVehicles returns every vehicle, most recently registered first.
func (s *VehicleService) GetAllVehicles() ([]models.VehicleModel, error) {
	cacheKey := "vehicles_all"

	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]models.VehicleModel), nil
	}

	var vehicles []models.VehicleModel
	err := s.withAssociations(s.db).
		Order("registered_at DESC, id DESC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, vehicles, 5*time.Minute)

	return vehicles, nil
}

func (s *VehicleService) GetVehicleByID(id int) (*models.VehicleModel, error) {
	cacheKey := fmt.Sprintf("vehicles_id_%d", id)

	if cached, found := s.cache.Get(cacheKey); found {
		vehicle := cached.(models.VehicleModel)
		return &vehicle, nil
	}

	var vehicle models.VehicleModel
	err := s.withAssociations(s.db).First(&vehicle, id).Error
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, vehicle, 10*time.Minute)

	return &vehicle, nil
}

func (s *VehicleService) GetVehicleByPlate(plate string) (*models.VehicleModel, error) {
	var vehicle models.VehicleModel
	err := s.withAssociations(s.db).
		Where("plate = ?", plate).
		First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Exists reports whether a vehicle row with the given id is present.
func (s *VehicleService) Exists(id int) (bool, error) {
	var count int64
	err := s.db.Model(&models.VehicleModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// PlateExists reports whether another vehicle already uses the exact plate.
// excludeID skips one vehicle, for update scenarios.
func (s *VehicleService) PlateExists(plate string, excludeID *int) (bool, error) {
	query := s.db.Model(&models.VehicleModel{}).Where("plate = ?", plate)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// SearchVehicles applies the filter's predicates conjunctively. Predicates
// left unset restrict nothing, so an empty filter is equivalent to
// GetAllVehicles.
func (s *VehicleService) SearchVehicles(filter *VehicleFilter) ([]models.VehicleModel, error) {
	query := s.withAssociations(s.db.Model(&models.VehicleModel{}))

	if filter.Plate != "" {
		query = query.Where("plate LIKE ?", "%"+filter.Plate+"%")
	}
	if filter.Make != "" {
		query = query.Where("make LIKE ?", "%"+filter.Make+"%")
	}
	if filter.Model != "" {
		query = query.Where("model LIKE ?", "%"+filter.Model+"%")
	}
	if filter.Color != "" {
		query = query.Where("color LIKE ?", "%"+filter.Color+"%")
	}
	if filter.YearMin != nil {
		query = query.Where("year >= ?", *filter.YearMin)
	}
	if filter.YearMax != nil {
		query = query.Where("year <= ?", *filter.YearMax)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if len(filter.Optionals) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM vehicle_optional_models vo JOIN optional_models o ON o.id = vo.optional_id WHERE vo.vehicle_id = vehicle_models.id AND o.name IN ?)",
			filter.Optionals)
	}
	switch filter.Photos {
	case "com":
		query = query.Where("EXISTS (SELECT 1 FROM vehicle_photo_models p WHERE p.vehicle_id = vehicle_models.id)")
	case "sem":
		query = query.Where("NOT EXISTS (SELECT 1 FROM vehicle_photo_models p WHERE p.vehicle_id = vehicle_models.id)")
	}

	var vehicles []models.VehicleModel
	err := query.Order("registered_at DESC, id DESC").Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// AddVehicle persists a new vehicle together with its photos and optional
// links in one transaction and returns the reloaded aggregate.
func (s *VehicleService) AddVehicle(vehicle *models.VehicleModel) (*models.VehicleModel, error) {
	links := vehicle.Optionals
	vehicle.Optionals = nil

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		for i := range links {
			links[i].VehicleID = vehicle.ID
		}
		if len(links) > 0 {
			if err := tx.Omit("Optional").Create(&links).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate("vehicles")

	return s.reload(vehicle.ID)
}

// UpdateVehicle persists the scalar changes already applied to the aggregate,
// replaces the optional link set wholesale, removes the listed photos and
// appends the new ones, all in one transaction. The last-update timestamp is
// stamped here.
func (s *VehicleService) UpdateVehicle(vehicle *models.VehicleModel, optionalIDs []int, newPhotos []models.VehiclePhotoModel, removePhotoIDs []int) (*models.VehicleModel, error) {
	now := time.Now().UTC()
	vehicle.LastUpdate = &now

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(vehicle).Error; err != nil {
			return err
		}

		// Replace the optional link set: clear everything, insert the new set
		if err := tx.Where("vehicle_id = ?", vehicle.ID).
			Delete(&models.VehicleOptionalModel{}).Error; err != nil {
			return err
		}
		for _, optionalID := range optionalIDs {
			link := models.VehicleOptionalModel{VehicleID: vehicle.ID, OptionalID: optionalID}
			if err := tx.Omit("Optional").Create(&link).Error; err != nil {
				return err
			}
		}

		// Photos: removals first, so a new photo can take over a freed
		// display-order slot within the same update
		if len(removePhotoIDs) > 0 {
			if err := tx.Where("vehicle_id = ? AND id IN ?", vehicle.ID, removePhotoIDs).
				Delete(&models.VehiclePhotoModel{}).Error; err != nil {
				return err
			}
		}
		if len(newPhotos) > 0 {
			if err := tx.Create(&newPhotos).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate("vehicles")

	return s.reload(vehicle.ID)
}

// DeleteVehicle removes the vehicle and everything it owns. It returns false
// when no such vehicle exists. Owned rows are deleted explicitly inside the
// transaction so no orphans remain even without database-level cascades.
func (s *VehicleService) DeleteVehicle(id int) (bool, error) {
	exists, err := s.Exists(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.VehiclePhotoModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.VehicleOptionalModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.VehiclePortalPackageModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.VehicleModel{}, id).Error
	})
	if err != nil {
		return false, err
	}

	s.cache.Invalidate("vehicles")

	return true, nil
}

// GetStats summarizes photo coverage across the inventory.
func (s *VehicleService) GetStats() (*dtos.InventoryStatsDTO, error) {
	var total, withPhotos int64

	if err := s.db.Model(&models.VehicleModel{}).Count(&total).Error; err != nil {
		return nil, err
	}
	err := s.db.Model(&models.VehicleModel{}).
		Where("EXISTS (SELECT 1 FROM vehicle_photo_models p WHERE p.vehicle_id = vehicle_models.id)").
		Count(&withPhotos).Error
	if err != nil {
		return nil, err
	}

	return &dtos.InventoryStatsDTO{
		Total:         total,
		WithPhotos:    withPhotos,
		WithoutPhotos: total - withPhotos,
	}, nil
}

// ExportVehicles renders the whole inventory as an Excel workbook, one row
// per vehicle.
func (s *VehicleService) ExportVehicles() (*excelize.File, error) {
	vehicles, err := s.GetAllVehicles()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Vehicles"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Make", "Model", "Year", "Plate", "Km", "Color", "Price", "Registered", "Optionals", "Photos", "iCarros", "WebMotors"}
	for i, header := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetCellValue(sheet, col+"1", header); err != nil {
			return nil, err
		}
	}

	for i, v := range vehicles {
		row := strconv.Itoa(i + 2)

		km := ""
		if v.Km != nil {
			km = strconv.Itoa(*v.Km)
		}

		optionalNames := make([]string, 0, len(v.Optionals))
		for _, link := range v.Optionals {
			optionalNames = append(optionalNames, link.Optional.Name)
		}

		iCarros, webMotors := "", ""
		for _, pkg := range v.Packages {
			switch pkg.Portal {
			case models.PortalICarros:
				iCarros = pkg.Tier.String()
			case models.PortalWebMotors:
				webMotors = pkg.Tier.String()
			}
		}

		values := []interface{}{
			v.ID, v.Make, v.Model, v.Year, v.Plate, km, v.Color, v.Price,
			v.RegisteredAt.Format("2006-01-02 15:04"),
			strings.Join(optionalNames, ", "),
			len(v.Photos),
			iCarros, webMotors,
		}
		for j, value := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			if err := f.SetCellValue(sheet, col+row, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// reload fetches the aggregate fresh, bypassing the cache.
func (s *VehicleService) reload(id int) (*models.VehicleModel, error) {
	var vehicle models.VehicleModel
	if err := s.withAssociations(s.db).First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}
