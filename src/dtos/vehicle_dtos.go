package dtos

import "time"

// VehicleDTO is the wire shape of a vehicle, with association rows flattened
// into a plain optional-equipment list.
type VehicleDTO struct {
	ID           int                `json:"id"`
	Make         string             `json:"make"`
	Model        string             `json:"model"`
	Year         int                `json:"year"`
	Plate        string             `json:"plate"`
	Km           *int               `json:"km"`
	Color        string             `json:"color"`
	Price        float64            `json:"price"`
	RegisteredAt time.Time          `json:"registeredAt"`
	UpdatedAt    *time.Time         `json:"updatedAt"`
	Photos       []VehiclePhotoDTO  `json:"photos"`
	Optionals    []OptionalDTO      `json:"optionals"`
	Packages     []PortalPackageDTO `json:"packages"`
}

type VehiclePhotoDTO struct {
	ID          int       `json:"id"`
	ImageBase64 string    `json:"imageBase64"`
	FileName    *string   `json:"fileName"`
	DisplayOrder int      `json:"displayOrder"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type OptionalDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CreateVehicleDTO struct {
	Make        string                  `json:"make"`
	Model       string                  `json:"model"`
	Year        int                     `json:"year"`
	Plate       string                  `json:"plate"`
	Km          *int                    `json:"km"`
	Color       string                  `json:"color"`
	Price       float64                 `json:"price"`
	OptionalIDs []int                   `json:"optionalIds"`
	Photos      []CreateVehiclePhotoDTO `json:"photos"`
}

type UpdateVehicleDTO struct {
	Make           string                  `json:"make"`
	Model          string                  `json:"model"`
	Year           int                     `json:"year"`
	Plate          string                  `json:"plate"`
	Km             *int                    `json:"km"`
	Color          string                  `json:"color"`
	Price          float64                 `json:"price"`
	OptionalIDs    []int                   `json:"optionalIds"`
	Photos         []CreateVehiclePhotoDTO `json:"photos"`
	PhotosToRemove []int                   `json:"photosToRemove"`
}

// CreateVehiclePhotoDTO carries a photo submitted with a create or update
// request. A positive ID marks a photo that already exists and must be kept
// as-is rather than inserted again.
type CreateVehiclePhotoDTO struct {
	ID          *int    `json:"id"`
	ImageBase64 string  `json:"imageBase64"`
	FileName    *string `json:"fileName"`
	DisplayOrder int    `json:"displayOrder"`
}

// InventoryStatsDTO is the photo-coverage summary shown on the listing screen.
type InventoryStatsDTO struct {
	Total         int64 `json:"total"`
	WithPhotos    int64 `json:"withPhotos"`
	WithoutPhotos int64 `json:"withoutPhotos"`
}
