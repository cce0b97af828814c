package models

import "time"

type VehicleModel struct {
	ID           int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Make         string     `json:"make" gorm:"type:varchar(100);not null"`
	Model        string     `json:"model" gorm:"type:varchar(100);not null"`
	Year         int        `json:"year" gorm:"not null"`
	Plate        string     `json:"plate" gorm:"type:varchar(10);not null;uniqueIndex"`
	Km           *int       `json:"km" gorm:"column:km"`
	Color        string     `json:"color" gorm:"type:varchar(50);not null"`
	Price        float64    `json:"price" gorm:"type:decimal(18,2);not null"`
	RegisteredAt time.Time  `json:"registeredAt" gorm:"not null;autoCreateTime"`
	// Named LastUpdate so gorm's UpdatedAt convention does not stamp it on
	// create; it stays null until the first update.
	LastUpdate *time.Time `json:"updatedAt" gorm:"column:last_update"`

	Photos    []VehiclePhotoModel         `json:"photos" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Optionals []VehicleOptionalModel      `json:"optionals" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Packages  []VehiclePortalPackageModel `json:"packages" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

type VehiclePhotoModel struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	VehicleID    int       `json:"vehicleId" gorm:"not null;uniqueIndex:idx_vehicle_photo_order"`
	ImageBase64  string    `json:"imageBase64" gorm:"type:text;not null"`
	FileName     *string   `json:"fileName" gorm:"type:varchar(255)"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;uniqueIndex:idx_vehicle_photo_order"`
	UploadedAt   time.Time `json:"uploadedAt" gorm:"not null"`
}
