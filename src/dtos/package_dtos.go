package dtos

import "github.com/adset/vehicles-backend/src/models"

type PortalPackageDTO struct {
	ID        int                `json:"id"`
	VehicleID int                `json:"vehicleId"`
	Portal    models.PortalType  `json:"portal"`
	Tier      models.PackageTier `json:"tier"`
}

// SavePortalPackageDTO selects one tier for one portal of one vehicle. Saving
// it replaces whatever tier was active on that portal before.
type SavePortalPackageDTO struct {
	VehicleID int                `json:"vehicleId"`
	Portal    models.PortalType  `json:"portal"`
	Tier      models.PackageTier `json:"tier"`
}
