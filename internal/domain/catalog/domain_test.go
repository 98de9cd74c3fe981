package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/shared/metrics"
)

// MockCatalogDB is a mock implementation of outbound.CatalogDatabasePort.
type MockCatalogDB struct {
	mock.Mock
}

func (m *MockCatalogDB) ListActivePackages(ctx context.Context) ([]*model.WashPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.WashPackage), args.Error(1)
}

func (m *MockCatalogDB) ListActiveAddons(ctx context.Context) ([]*model.Addon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Addon), args.Error(1)
}

func (m *MockCatalogDB) ListActiveAgents(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

// MockVehicleDB is a mock implementation of outbound.VehicleLookupPort.
type MockVehicleDB struct {
	mock.Mock
}

func (m *MockVehicleDB) GetType(ctx context.Context, brand, modelName string) (*model.VehicleType, error) {
	args := m.Called(ctx, brand, modelName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VehicleType), args.Error(1)
}

// MockCatalogCache is a mock implementation of outbound.CatalogCachePort.
type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) Get(ctx context.Context) (*model.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Catalog), args.Error(1)
}

func (m *MockCatalogCache) Set(ctx context.Context, catalog *model.Catalog) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}

func (m *MockCatalogCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var testMetrics = metrics.New("catalog_test")

func TestCatalogDomain_Fetch(t *testing.T) {
	t.Run("cache hit skips database", func(t *testing.T) {
		db := new(MockCatalogDB)
		cache := new(MockCatalogCache)
		domain := NewCatalogDomain(db, new(MockVehicleDB), cache, testMetrics, zap.NewNop())

		cached := &model.Catalog{Addons: []*model.Addon{{ID: uuid.New(), Name: "Interior Polish"}}}
		cache.On("Get", mock.Anything).Return(cached, nil)

		got, err := domain.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, cached, got)
		db.AssertNotCalled(t, "ListActivePackages", mock.Anything)
	})

	t.Run("cache miss loads and fills cache", func(t *testing.T) {
		db := new(MockCatalogDB)
		cache := new(MockCatalogCache)
		domain := NewCatalogDomain(db, new(MockVehicleDB), cache, testMetrics, zap.NewNop())

		cache.On("Get", mock.Anything).Return(nil, nil)
		db.On("ListActivePackages", mock.Anything).Return([]*model.WashPackage{{Name: "Premium Wash"}}, nil)
		db.On("ListActiveAddons", mock.Anything).Return([]*model.Addon{}, nil)
		db.On("ListActiveAgents", mock.Anything).Return([]*model.User{}, nil)
		cache.On("Set", mock.Anything, mock.Anything).Return(nil)

		got, err := domain.Fetch(context.Background())
		require.NoError(t, err)
		require.Len(t, got.Packages, 1)
		assert.Equal(t, "Premium Wash", got.Packages[0].Name)
		cache.AssertExpectations(t)
	})

	t.Run("cache read failure falls through to database", func(t *testing.T) {
		db := new(MockCatalogDB)
		cache := new(MockCatalogCache)
		domain := NewCatalogDomain(db, new(MockVehicleDB), cache, testMetrics, zap.NewNop())

		cache.On("Get", mock.Anything).Return(nil, errors.New("redis down"))
		db.On("ListActivePackages", mock.Anything).Return([]*model.WashPackage{}, nil)
		db.On("ListActiveAddons", mock.Anything).Return([]*model.Addon{}, nil)
		db.On("ListActiveAgents", mock.Anything).Return([]*model.User{}, nil)
		cache.On("Set", mock.Anything, mock.Anything).Return(nil)

		_, err := domain.Fetch(context.Background())
		require.NoError(t, err)
	})

	t.Run("database failure propagates", func(t *testing.T) {
		db := new(MockCatalogDB)
		cache := new(MockCatalogCache)
		domain := NewCatalogDomain(db, new(MockVehicleDB), cache, testMetrics, zap.NewNop())

		cache.On("Get", mock.Anything).Return(nil, nil)
		db.On("ListActivePackages", mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := domain.Fetch(context.Background())
		require.Error(t, err)
	})
}

func TestCatalogDomain_LookupVehicleType(t *testing.T) {
	t.Run("blank inputs short-circuit", func(t *testing.T) {
		vehicleDB := new(MockVehicleDB)
		domain := NewCatalogDomain(new(MockCatalogDB), vehicleDB, new(MockCatalogCache), testMetrics, zap.NewNop())

		vt, err := domain.LookupVehicleType(context.Background(), "", "City")
		require.NoError(t, err)
		assert.Nil(t, vt)
		vehicleDB.AssertNotCalled(t, "GetType", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mapping found", func(t *testing.T) {
		vehicleDB := new(MockVehicleDB)
		domain := NewCatalogDomain(new(MockCatalogDB), vehicleDB, new(MockCatalogCache), testMetrics, zap.NewNop())

		sedan := model.VehicleTypeSedan
		vehicleDB.On("GetType", mock.Anything, "Honda", "City").Return(&sedan, nil)

		vt, err := domain.LookupVehicleType(context.Background(), "Honda", "City")
		require.NoError(t, err)
		require.NotNil(t, vt)
		assert.Equal(t, model.VehicleTypeSedan, *vt)
	})
}
