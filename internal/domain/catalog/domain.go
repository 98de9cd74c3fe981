package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
	"github.com/washdesk/server/internal/shared/metrics"
)

// CatalogDomain defines the interface for catalog business logic.
type CatalogDomain interface {
	// Fetch returns the packages, add-ons, and assignable agents the
	// order wizard needs, served from cache when possible.
	Fetch(ctx context.Context) (*model.Catalog, error)

	// LookupVehicleType resolves brand+model to a vehicle type, or nil
	// when no mapping exists.
	LookupVehicleType(ctx context.Context, brand, modelName string) (*model.VehicleType, error)

	// InvalidateCache drops the cached catalog.
	InvalidateCache(ctx context.Context) error
}

// catalogDomain implements CatalogDomain.
type catalogDomain struct {
	catalogDB outbound.CatalogDatabasePort
	vehicleDB outbound.VehicleLookupPort
	cache     outbound.CatalogCachePort
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewCatalogDomain creates a new catalog domain service.
func NewCatalogDomain(
	catalogDB outbound.CatalogDatabasePort,
	vehicleDB outbound.VehicleLookupPort,
	cache outbound.CatalogCachePort,
	m *metrics.Metrics,
	logger *zap.Logger,
) CatalogDomain {
	return &catalogDomain{
		catalogDB: catalogDB,
		vehicleDB: vehicleDB,
		cache:     cache,
		metrics:   m,
		logger:    logger,
	}
}

func (d *catalogDomain) Fetch(ctx context.Context) (*model.Catalog, error) {
	if cached, err := d.cache.Get(ctx); err != nil {
		d.logger.Warn("catalog cache read failed", zap.Error(err))
	} else if cached != nil {
		d.metrics.RecordCacheHit("catalog")
		return cached, nil
	}
	d.metrics.RecordCacheMiss("catalog")

	packages, err := d.catalogDB.ListActivePackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	addons, err := d.catalogDB.ListActiveAddons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list addons: %w", err)
	}
	agents, err := d.catalogDB.ListActiveAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}

	catalog := &model.Catalog{
		Packages: packages,
		Addons:   addons,
		Agents:   agents,
	}

	if err := d.cache.Set(ctx, catalog); err != nil {
		d.logger.Warn("catalog cache write failed", zap.Error(err))
	}
	return catalog, nil
}

func (d *catalogDomain) LookupVehicleType(ctx context.Context, brand, modelName string) (*model.VehicleType, error) {
	if brand == "" || modelName == "" {
		return nil, nil
	}
	return d.vehicleDB.GetType(ctx, brand, modelName)
}

func (d *catalogDomain) InvalidateCache(ctx context.Context) error {
	return d.cache.Invalidate(ctx)
}
