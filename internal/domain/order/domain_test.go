package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/washdesk/server/internal/domain/pricing"
	"github.com/washdesk/server/internal/domain/wizard"
	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/shared/config"
	"github.com/washdesk/server/internal/shared/metrics"
)

// MockOrderDB is a mock implementation of outbound.OrderDatabasePort.
type MockOrderDB struct {
	mock.Mock
}

func (m *MockOrderDB) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderDB) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderDB) GetByIDWithItems(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderDB) List(ctx context.Context, filter *model.OrderFilter, page, pageSize int) ([]*model.Order, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderDB) Update(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderDB) ReplaceItems(ctx context.Context, orderID uuid.UUID, items []*model.OrderLineItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

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

// MockWizardDomain is a mock implementation of wizard.WizardDomain.
type MockWizardDomain struct {
	mock.Mock
}

func (m *MockWizardDomain) SaveDraft(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft) error {
	args := m.Called(ctx, userID, draft)
	return args.Error(0)
}

func (m *MockWizardDomain) LoadDraft(ctx context.Context, userID uuid.UUID, customerID *uuid.UUID) (*model.WizardDraft, error) {
	args := m.Called(ctx, userID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WizardDraft), args.Error(1)
}

func (m *MockWizardDomain) ClearDraft(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockWizardDomain) Advance(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft) (*wizard.ValidationResult, *model.WizardDraft, error) {
	args := m.Called(ctx, userID, draft)
	var result *wizard.ValidationResult
	if args.Get(0) != nil {
		result = args.Get(0).(*wizard.ValidationResult)
	}
	var updated *model.WizardDraft
	if args.Get(1) != nil {
		updated = args.Get(1).(*model.WizardDraft)
	}
	return result, updated, args.Error(2)
}

func (m *MockWizardDomain) Back(draft *model.WizardDraft) *model.WizardDraft {
	args := m.Called(draft)
	return args.Get(0).(*model.WizardDraft)
}

func (m *MockWizardDomain) ApplyDerived(ctx context.Context, draft *model.WizardDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockWizardDomain) Quote(ctx context.Context, draft *model.WizardDraft) (*pricing.Totals, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Totals), args.Error(1)
}

var testMetrics = metrics.New("order_test")

func newTestDomain(orderDB *MockOrderDB, customerDB *MockCustomerDB, wiz *MockWizardDomain) OrderDomain {
	return NewOrderDomain(orderDB, customerDB, wiz, config.WizardConfig{
		DraftExpiry:   24 * time.Hour,
		GSTPercentage: 18.0,
	}, testMetrics, zap.NewNop())
}

func completeDraft(customerID uuid.UUID) *model.WizardDraft {
	pkgID := uuid.New()
	return &model.WizardDraft{
		CurrentStep: 4,
		Customer:    &model.CustomerRef{ID: customerID, Name: "Asha Nair", Phone: "9876543210"},
		PackageItems: []model.DraftLineItem{
			{
				ItemID:       pkgID,
				VehicleType:  model.VehicleTypeSedan,
				Quantity:     1,
				UnitPrice:    50000,
				DiscountType: model.DiscountTypeFixed,
			},
		},
		BookingDate: "2026-09-01",
		TimeFrom:    "09:00",
		TimeTo:      "11:00",
		Address:     model.DraftAddress{Area: "Indiranagar", City: "Bengaluru"},
	}
}

func TestOrderDomain_Submit_Create(t *testing.T) {
	userID := uuid.New()
	customerID := uuid.New()

	t.Run("confirmed order created and draft cleared", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		customerDB := new(MockCustomerDB)
		wiz := new(MockWizardDomain)
		domain := newTestDomain(orderDB, customerDB, wiz)

		draft := completeDraft(customerID)
		wiz.On("ApplyDerived", mock.Anything, draft).Return(nil)
		customerDB.On("GetByID", mock.Anything, customerID).
			Return(&model.Customer{ID: customerID, Name: "Asha Nair", Phone: "9876543210"}, nil)
		orderDB.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.Status == model.OrderStatusConfirmed &&
				o.CustomerID == customerID &&
				o.CreatedBy == userID &&
				len(o.Items) == 1 &&
				o.Items[0].Quantity == 1 &&
				o.Items[0].UnitPrice == 50000 &&
				o.Items[0].DiscountValue == 0
		})).Return(nil).Once()
		wiz.On("ClearDraft", mock.Anything, userID).Return(nil).Once()

		status := model.OrderStatusConfirmed
		submitted, result, err := domain.Submit(context.Background(), userID, draft, &status)
		require.NoError(t, err)
		assert.Nil(t, result)
		require.NotNil(t, submitted)

		assert.Equal(t, int64(50000), submitted.Subtotal)
		assert.Equal(t, int64(9000), submitted.GST)
		assert.Equal(t, int64(59000), submitted.Total)
		assert.Equal(t, "9876543210", submitted.ContactPhone)
		assert.Regexp(t, `^ORD-\d{8}-[A-Z0-9]{5}$`, submitted.OrderNo)

		orderDB.AssertExpectations(t)
		wiz.AssertExpectations(t)
	})

	t.Run("defaults to draft status", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		customerDB := new(MockCustomerDB)
		wiz := new(MockWizardDomain)
		domain := newTestDomain(orderDB, customerDB, wiz)

		draft := completeDraft(customerID)
		wiz.On("ApplyDerived", mock.Anything, draft).Return(nil)
		customerDB.On("GetByID", mock.Anything, customerID).
			Return(&model.Customer{ID: customerID, Phone: "9876543210"}, nil)
		orderDB.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.Status == model.OrderStatusDraft
		})).Return(nil)
		wiz.On("ClearDraft", mock.Anything, userID).Return(nil)

		submitted, result, err := domain.Submit(context.Background(), userID, draft, nil)
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, model.OrderStatusDraft, submitted.Status)
	})

	t.Run("phone override wins over profile phone", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		customerDB := new(MockCustomerDB)
		wiz := new(MockWizardDomain)
		domain := newTestDomain(orderDB, customerDB, wiz)

		draft := completeDraft(customerID)
		draft.ContactPhone = "9000000001"
		wiz.On("ApplyDerived", mock.Anything, draft).Return(nil)
		customerDB.On("GetByID", mock.Anything, customerID).
			Return(&model.Customer{ID: customerID, Phone: "9876543210"}, nil)
		orderDB.On("Create", mock.Anything, mock.Anything).Return(nil)
		wiz.On("ClearDraft", mock.Anything, userID).Return(nil)

		submitted, _, err := domain.Submit(context.Background(), userID, draft, nil)
		require.NoError(t, err)
		assert.Equal(t, "9000000001", submitted.ContactPhone)
	})

	t.Run("incomplete draft fails the final gate", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		customerDB := new(MockCustomerDB)
		wiz := new(MockWizardDomain)
		domain := newTestDomain(orderDB, customerDB, wiz)

		draft := completeDraft(customerID)
		draft.BookingDate = ""
		wiz.On("ApplyDerived", mock.Anything, draft).Return(nil)

		submitted, result, err := domain.Submit(context.Background(), userID, draft, nil)
		require.NoError(t, err)
		assert.Nil(t, submitted)
		require.NotNil(t, result)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "booking_date")
		orderDB.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		wiz.AssertNotCalled(t, "ClearDraft", mock.Anything, mock.Anything)
	})

	t.Run("in_progress is not a valid creation status", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		customerDB := new(MockCustomerDB)
		wiz := new(MockWizardDomain)
		domain := newTestDomain(orderDB, customerDB, wiz)

		draft := completeDraft(customerID)
		wiz.On("ApplyDerived", mock.Anything, draft).Return(nil)
		customerDB.On("GetByID", mock.Anything, customerID).
			Return(&model.Customer{ID: customerID, Phone: "9876543210"}, nil)

		status := model.OrderStatusInProgress
		_, _, err := domain.Submit(context.Background(), userID, draft, &status)
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown customer", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		customerDB := new(MockCustomerDB)
		wiz := new(MockWizardDomain)
		domain := newTestDomain(orderDB, customerDB, wiz)

		draft := completeDraft(customerID)
		wiz.On("ApplyDerived", mock.Anything, draft).Return(nil)
		customerDB.On("GetByID", mock.Anything, customerID).Return(nil, nil)

		_, _, err := domain.Submit(context.Background(), userID, draft, nil)
		require.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestOrderDomain_Submit_Update(t *testing.T) {
	userID := uuid.New()
	customerID := uuid.New()
	orderID := uuid.New()

	t.Run("edit mode rewrites order and items", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		customerDB := new(MockCustomerDB)
		wiz := new(MockWizardDomain)
		domain := newTestDomain(orderDB, customerDB, wiz)

		draft := completeDraft(customerID)
		draft.OrderID = &orderID
		wiz.On("ApplyDerived", mock.Anything, draft).Return(nil)
		customerDB.On("GetByID", mock.Anything, customerID).
			Return(&model.Customer{ID: customerID, Phone: "9876543210"}, nil)
		orderDB.On("GetByIDWithItems", mock.Anything, orderID).
			Return(&model.Order{ID: orderID, OrderNo: "ORD-20260801-AB12C", Status: model.OrderStatusDraft}, nil)
		orderDB.On("Update", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.ID == orderID && o.OrderNo == "ORD-20260801-AB12C"
		})).Return(nil)
		orderDB.On("ReplaceItems", mock.Anything, orderID, mock.Anything).Return(nil)

		submitted, result, err := domain.Submit(context.Background(), userID, draft, nil)
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, orderID, submitted.ID)
		wiz.AssertNotCalled(t, "ClearDraft", mock.Anything, mock.Anything)
		orderDB.AssertExpectations(t)
	})

	t.Run("terminal order is not editable", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		customerDB := new(MockCustomerDB)
		wiz := new(MockWizardDomain)
		domain := newTestDomain(orderDB, customerDB, wiz)

		draft := completeDraft(customerID)
		draft.OrderID = &orderID
		wiz.On("ApplyDerived", mock.Anything, draft).Return(nil)
		customerDB.On("GetByID", mock.Anything, customerID).
			Return(&model.Customer{ID: customerID, Phone: "9876543210"}, nil)
		orderDB.On("GetByIDWithItems", mock.Anything, orderID).
			Return(&model.Order{ID: orderID, Status: model.OrderStatusCompleted}, nil)

		_, _, err := domain.Submit(context.Background(), userID, draft, nil)
		require.ErrorIs(t, err, ErrOrderNotEditable)
	})

	t.Run("status jump must follow transitions", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		customerDB := new(MockCustomerDB)
		wiz := new(MockWizardDomain)
		domain := newTestDomain(orderDB, customerDB, wiz)

		draft := completeDraft(customerID)
		draft.OrderID = &orderID
		wiz.On("ApplyDerived", mock.Anything, draft).Return(nil)
		customerDB.On("GetByID", mock.Anything, customerID).
			Return(&model.Customer{ID: customerID, Phone: "9876543210"}, nil)
		orderDB.On("GetByIDWithItems", mock.Anything, orderID).
			Return(&model.Order{ID: orderID, Status: model.OrderStatusDraft}, nil)

		status := model.OrderStatusCompleted
		_, _, err := domain.Submit(context.Background(), userID, draft, &status)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestOrderDomain_UpdateStatus(t *testing.T) {
	orderID := uuid.New()

	t.Run("valid transition", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		domain := newTestDomain(orderDB, new(MockCustomerDB), new(MockWizardDomain))

		orderDB.On("GetByID", mock.Anything, orderID).
			Return(&model.Order{ID: orderID, Status: model.OrderStatusConfirmed}, nil)
		orderDB.On("Update", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.Status == model.OrderStatusInProgress
		})).Return(nil)

		updated, err := domain.UpdateStatus(context.Background(), orderID, model.OrderStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusInProgress, updated.Status)
	})

	t.Run("cancel stamps canceled_at", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		domain := newTestDomain(orderDB, new(MockCustomerDB), new(MockWizardDomain))

		orderDB.On("GetByID", mock.Anything, orderID).
			Return(&model.Order{ID: orderID, Status: model.OrderStatusDraft}, nil)
		orderDB.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := domain.UpdateStatus(context.Background(), orderID, model.OrderStatusCanceled)
		require.NoError(t, err)
		require.NotNil(t, updated.CanceledAt)
	})

	t.Run("invalid transition", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		domain := newTestDomain(orderDB, new(MockCustomerDB), new(MockWizardDomain))

		orderDB.On("GetByID", mock.Anything, orderID).
			Return(&model.Order{ID: orderID, Status: model.OrderStatusCompleted}, nil)

		_, err := domain.UpdateStatus(context.Background(), orderID, model.OrderStatusConfirmed)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		domain := newTestDomain(orderDB, new(MockCustomerDB), new(MockWizardDomain))

		_, err := domain.UpdateStatus(context.Background(), orderID, model.OrderStatus("archived"))
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("order missing", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		domain := newTestDomain(orderDB, new(MockCustomerDB), new(MockWizardDomain))

		orderDB.On("GetByID", mock.Anything, orderID).Return(nil, nil)

		_, err := domain.UpdateStatus(context.Background(), orderID, model.OrderStatusConfirmed)
		require.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestOrderDomain_GetOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		orderDB := new(MockOrderDB)
		domain := newTestDomain(orderDB, new(MockCustomerDB), new(MockWizardDomain))

		orderDB.On("GetByIDWithItems", mock.Anything, orderID).Return(nil, nil)

		_, err := domain.GetOrder(context.Background(), orderID)
		require.ErrorIs(t, err, ErrOrderNotFound)
	})
}
