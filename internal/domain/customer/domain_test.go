package customer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/washdesk/server/internal/model"
)

// MockCustomerDB is a mock implementation of outbound.CustomerDatabasePort.
type MockCustomerDB struct {
	mock.Mock
}

func (m *MockCustomerDB) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerDB) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerDB) Search(ctx context.Context, term string, limit int) ([]*model.Customer, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Customer), args.Error(1)
}

func (m *MockCustomerDB) List(ctx context.Context, page, pageSize int) ([]*model.Customer, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerDB) Update(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func TestCustomerDomain_CreateCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := new(MockCustomerDB)
		domain := NewCustomerDomain(db, zap.NewNop())

		db.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
			return c.Name == "Asha Nair" && c.ID != uuid.Nil
		})).Return(nil)

		created, err := domain.CreateCustomer(context.Background(), &model.Customer{
			Name:  "  Asha Nair ",
			Phone: "9876543210",
		})
		require.NoError(t, err)
		assert.Equal(t, "Asha Nair", created.Name)
		db.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		db := new(MockCustomerDB)
		domain := NewCustomerDomain(db, zap.NewNop())

		_, err := domain.CreateCustomer(context.Background(), &model.Customer{Phone: "9876543210"})
		require.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("missing phone", func(t *testing.T) {
		db := new(MockCustomerDB)
		domain := NewCustomerDomain(db, zap.NewNop())

		_, err := domain.CreateCustomer(context.Background(), &model.Customer{Name: "Asha"})
		require.ErrorIs(t, err, ErrPhoneRequired)
	})
}

func TestCustomerDomain_GetCustomer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := new(MockCustomerDB)
		domain := NewCustomerDomain(db, zap.NewNop())

		id := uuid.New()
		db.On("GetByID", mock.Anything, id).Return(&model.Customer{ID: id, Name: "Ravi"}, nil)

		customer, err := domain.GetCustomer(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Ravi", customer.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db := new(MockCustomerDB)
		domain := NewCustomerDomain(db, zap.NewNop())

		id := uuid.New()
		db.On("GetByID", mock.Anything, id).Return(nil, nil)

		_, err := domain.GetCustomer(context.Background(), id)
		require.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestCustomerDomain_SearchCustomers(t *testing.T) {
	t.Run("blank term returns empty", func(t *testing.T) {
		db := new(MockCustomerDB)
		domain := NewCustomerDomain(db, zap.NewNop())

		results, err := domain.SearchCustomers(context.Background(), "   ", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
		db.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("limit defaults and caps", func(t *testing.T) {
		db := new(MockCustomerDB)
		domain := NewCustomerDomain(db, zap.NewNop())

		db.On("Search", mock.Anything, "asha", defaultSearchLimit).Return([]*model.Customer{}, nil).Once()
		db.On("Search", mock.Anything, "asha", maxSearchLimit).Return([]*model.Customer{}, nil).Once()

		_, err := domain.SearchCustomers(context.Background(), "asha", 0)
		require.NoError(t, err)
		_, err = domain.SearchCustomers(context.Background(), "asha", 500)
		require.NoError(t, err)
		db.AssertExpectations(t)
	})
}

func TestCustomerDomain_UpdateCustomer(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db := new(MockCustomerDB)
		domain := NewCustomerDomain(db, zap.NewNop())

		customer := &model.Customer{ID: uuid.New(), Name: "Ravi"}
		db.On("GetByID", mock.Anything, customer.ID).Return(nil, nil)

		err := domain.UpdateCustomer(context.Background(), customer)
		require.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("success", func(t *testing.T) {
		db := new(MockCustomerDB)
		domain := NewCustomerDomain(db, zap.NewNop())

		customer := &model.Customer{ID: uuid.New(), Name: "Ravi"}
		db.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
		db.On("Update", mock.Anything, customer).Return(nil)

		err := domain.UpdateCustomer(context.Background(), customer)
		require.NoError(t, err)
		db.AssertExpectations(t)
	})
}
