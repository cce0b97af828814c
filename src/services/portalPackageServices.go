package services

import (
	"errors"

	"github.com/adset/vehicles-backend/src/cache"
	"github.com/adset/vehicles-backend/src/models"
	"gorm.io/gorm"
)

type PortalPackageService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPortalPackageService(db *gorm.DB, c *cache.Cache) *PortalPackageService {
	return &PortalPackageService{db: db, cache: c}
}

func (s *PortalPackageService) GetByVehicle(vehicleID int) ([]models.VehiclePortalPackageModel, error) {
	var packages []models.VehiclePortalPackageModel
	err := s.db.Where("vehicle_id = ?", vehicleID).
		Order("portal").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

// Save upserts the package keyed on (vehicle, portal): an existing row gets
// the new tier, otherwise a row is inserted. The returned flag reports
// whether a row was created.
func (s *PortalPackageService) Save(pkg *models.VehiclePortalPackageModel) (*models.VehiclePortalPackageModel, bool, error) {
	saved, created, err := s.upsert(s.db, pkg)
	if err != nil {
		return nil, false, err
	}

	s.cache.Invalidate("vehicles")

	return saved, created, nil
}

// SaveBulk upserts every submitted package in one transaction, keyed on
// (vehicle, portal). Portals not present in the batch keep whatever package
// they had, so a partial batch never silently wipes other selections.
func (s *PortalPackageService) SaveBulk(pkgs []models.VehiclePortalPackageModel) ([]models.VehiclePortalPackageModel, error) {
	saved := make([]models.VehiclePortalPackageModel, 0, len(pkgs))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range pkgs {
			result, _, err := s.upsert(tx, &pkgs[i])
			if err != nil {
				return err
			}
			saved = append(saved, *result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate("vehicles")

	return saved, nil
}

// Delete removes one package row. It returns false when the id is unknown.
func (s *PortalPackageService) Delete(id int) (bool, error) {
	var pkg models.VehiclePortalPackageModel
	if err := s.db.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.db.Delete(&pkg).Error; err != nil {
		return false, err
	}

	s.cache.Invalidate("vehicles")

	return true, nil
}

func (s *PortalPackageService) upsert(db *gorm.DB, pkg *models.VehiclePortalPackageModel) (*models.VehiclePortalPackageModel, bool, error) {
	var existing models.VehiclePortalPackageModel
	err := db.Where("vehicle_id = ? AND portal = ?", pkg.VehicleID, pkg.Portal).
		First(&existing).Error

	switch {
	case err == nil:
		existing.Tier = pkg.Tier
		if err := db.Save(&existing).Error; err != nil {
			return nil, false, err
		}
		return &existing, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(pkg).Error; err != nil {
			return nil, false, err
		}
		return pkg, true, nil
	default:
		return nil, false, err
	}
}
