package models

// OptionalModel is a catalog entry of optional equipment (air conditioning,
// alarm, ...). Vehicles reference it through VehicleOptionalModel link rows.
type OptionalModel struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
}

// VehicleOptionalModel is a pure link row between a vehicle and an optional.
// The whole set for a vehicle is replaced on every update, never diffed.
type VehicleOptionalModel struct {
	VehicleID  int           `json:"vehicleId" gorm:"primaryKey"`
	OptionalID int           `json:"optionalId" gorm:"primaryKey"`
	Optional   OptionalModel `json:"optional" gorm:"foreignKey:OptionalID;references:ID"`
}
