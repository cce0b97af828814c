package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adset/vehicles-backend/src/dtos"
)

// Brazilian plate formats: the Mercosul layout ABC1D23 and the older ABC1234.
var (
	plateMercosul = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)
	plateLegacy   = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
)

// ValidateCreateVehicle checks every rule independently and returns the full
// list of violations, so the client sees all problems in one round trip.
func ValidateCreateVehicle(dto *dtos.CreateVehicleDTO) []string {
	return validateVehicleFields(dto.Make, dto.Model, dto.Year, dto.Plate, dto.Km, dto.Color, dto.Price, dto.OptionalIDs)
}

// ValidateUpdateVehicle applies the same rule set as create.
func ValidateUpdateVehicle(dto *dtos.UpdateVehicleDTO) []string {
	return validateVehicleFields(dto.Make, dto.Model, dto.Year, dto.Plate, dto.Km, dto.Color, dto.Price, dto.OptionalIDs)
}

func validateVehicleFields(makeName, modelName string, year int, plate string, km *int, color string, price float64, optionalIDs []int) []string {
	var errs []string

	if strings.TrimSpace(makeName) == "" {
		errs = append(errs, "make is required")
	} else if len(makeName) > 100 {
		errs = append(errs, "make must be at most 100 characters")
	}

	if strings.TrimSpace(modelName) == "" {
		errs = append(errs, "model is required")
	} else if len(modelName) > 100 {
		errs = append(errs, "model must be at most 100 characters")
	}

	if year == 0 {
		errs = append(errs, "year is required")
	} else if year <= 1900 {
		errs = append(errs, "year must be greater than 1900")
	} else if year > time.Now().Year()+1 {
		errs = append(errs, "year cannot be beyond next year")
	}

	if strings.TrimSpace(plate) == "" {
		errs = append(errs, "plate is required")
	} else {
		if len(plate) > 10 {
			errs = append(errs, "plate must be at most 10 characters")
		}
		if !plateMercosul.MatchString(plate) && !plateLegacy.MatchString(plate) {
			errs = append(errs, "plate must match format ABC1234 or ABC1D23")
		}
	}

	if km != nil && *km < 0 {
		errs = append(errs, "km must be zero or greater")
	}

	if strings.TrimSpace(color) == "" {
		errs = append(errs, "color is required")
	} else if len(color) > 50 {
		errs = append(errs, "color must be at most 50 characters")
	}

	if price == 0 {
		errs = append(errs, "price is required")
	} else if price < 0 {
		errs = append(errs, "price must be greater than zero")
	}

	seen := make(map[int]bool, len(optionalIDs))
	for _, id := range optionalIDs {
		if seen[id] {
			errs = append(errs, fmt.Sprintf("optional %d is listed more than once", id))
			break
		}
		seen[id] = true
	}

	return errs
}
