package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
)

// vehicleAdapter implements outbound.VehicleLookupPort.
type vehicleAdapter struct {
	db *gorm.DB
}

// NewVehicleAdapter creates a new vehicle lookup adapter.
func NewVehicleAdapter(db *gorm.DB) outbound.VehicleLookupPort {
	return &vehicleAdapter{db: db}
}

func (a *vehicleAdapter) GetType(ctx context.Context, brand, modelName string) (*model.VehicleType, error) {
	var mapping model.VehicleModel
	err := a.db.WithContext(ctx).
		Where("LOWER(brand) = LOWER(?) AND LOWER(model) = LOWER(?)", brand, modelName).
		First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping.VehicleType, nil
}

// Compile-time check
var _ outbound.VehicleLookupPort = (*vehicleAdapter)(nil)
