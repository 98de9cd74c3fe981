package model

import "github.com/google/uuid"

// VehicleType classifies a vehicle for package pricing.
type VehicleType string

const (
	VehicleTypeHatchback VehicleType = "hatchback"
	VehicleTypeSedan     VehicleType = "sedan"
	VehicleTypeSUV       VehicleType = "suv"
	VehicleTypeBike      VehicleType = "bike"
	VehicleTypeOther     VehicleType = "other"
)

// String returns the string representation of the vehicle type.
func (t VehicleType) String() string {
	return string(t)
}

// IsValid checks if the vehicle type is known.
func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeHatchback, VehicleTypeSedan, VehicleTypeSUV, VehicleTypeBike, VehicleTypeOther:
		return true
	}
	return false
}

// VehicleModel maps a brand/model pair to a vehicle type.
// Used to infer the pricing class when a package line carries brand+model.
type VehicleModel struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Brand       string      `gorm:"not null;uniqueIndex:idx_vehicle_brand_model"`
	Model       string      `gorm:"not null;uniqueIndex:idx_vehicle_brand_model"`
	VehicleType VehicleType `gorm:"not null"`
}

// TableName returns the database table name.
func (VehicleModel) TableName() string {
	return "vehicle_models"
}
