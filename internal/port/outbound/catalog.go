package outbound

import (
	"context"

	"github.com/washdesk/server/internal/model"
)

// CatalogDatabasePort defines the interface for catalog database operations.
type CatalogDatabasePort interface {
	ListActivePackages(ctx context.Context) ([]*model.WashPackage, error)
	ListActiveAddons(ctx context.Context) ([]*model.Addon, error)
	ListActiveAgents(ctx context.Context) ([]*model.User, error)
}

// VehicleLookupPort defines the interface for brand/model vehicle-type lookups.
type VehicleLookupPort interface {
	// GetType returns the vehicle type mapped to brand+model, or nil when
	// no mapping exists.
	GetType(ctx context.Context, brand, modelName string) (*model.VehicleType, error)
}

// CatalogCachePort defines the interface for the wizard catalog cache.
type CatalogCachePort interface {
	Get(ctx context.Context) (*model.Catalog, error)
	Set(ctx context.Context, catalog *model.Catalog) error
	Invalidate(ctx context.Context) error
}
