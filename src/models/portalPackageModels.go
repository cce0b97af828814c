package models

type PortalType int

const (
	PortalICarros   PortalType = 1
	PortalWebMotors PortalType = 2
)

func (p PortalType) Valid() bool {
	return p == PortalICarros || p == PortalWebMotors
}

func (p PortalType) String() string {
	switch p {
	case PortalICarros:
		return "iCarros"
	case PortalWebMotors:
		return "WebMotors"
	}
	return "unknown"
}

// PackageTier is ordered from the cheapest advertising package to the most
// prominent one.
type PackageTier int

const (
	TierBasic    PackageTier = 1
	TierBronze   PackageTier = 2
	TierDiamond  PackageTier = 3
	TierPlatinum PackageTier = 4
)

func (t PackageTier) Valid() bool {
	return t >= TierBasic && t <= TierPlatinum
}

func (t PackageTier) String() string {
	switch t {
	case TierBasic:
		return "Basico"
	case TierBronze:
		return "Bronze"
	case TierDiamond:
		return "Diamante"
	case TierPlatinum:
		return "Platinum"
	}
	return "unknown"
}

// VehiclePortalPackageModel holds the advertising package bought for one
// vehicle on one portal. A vehicle carries at most one tier per portal.
type VehiclePortalPackageModel struct {
	ID        int         `json:"id" gorm:"primaryKey;autoIncrement"`
	VehicleID int         `json:"vehicleId" gorm:"not null;uniqueIndex:idx_vehicle_portal"`
	Portal    PortalType  `json:"portal" gorm:"not null;uniqueIndex:idx_vehicle_portal"`
	Tier      PackageTier `json:"tier" gorm:"not null"`
}
