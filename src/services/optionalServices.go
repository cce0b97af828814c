package services

import (
	"time"

	"github.com/adset/vehicles-backend/src/cache"
	"github.com/adset/vehicles-backend/src/models"
	"gorm.io/gorm"
)

type OptionalService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewOptionalService(db *gorm.DB, c *cache.Cache) *OptionalService {
	return &OptionalService{db: db, cache: c}
}

// GetAllOptionals returns the optional-equipment catalog, sorted by name.
func (s *OptionalService) GetAllOptionals() ([]models.OptionalModel, error) {
	cacheKey := "optionals_all"

	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]models.OptionalModel), nil
	}

	var optionals []models.OptionalModel
	if err := s.db.Order("name").Find(&optionals).Error; err != nil {
		return nil, err
	}

	// The catalog is seeded and effectively static
	s.cache.Set(cacheKey, optionals, 30*time.Minute)

	return optionals, nil
}

func (s *OptionalService) Exists(id int) (bool, error) {
	var count int64
	err := s.db.Model(&models.OptionalModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// MissingOptionals returns the subset of ids with no catalog entry, in the
// order they were submitted.
func (s *OptionalService) MissingOptionals(ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var existing []int
	err := s.db.Model(&models.OptionalModel{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}

	found := make(map[int]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}

	var missing []int
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
