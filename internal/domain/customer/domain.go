package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// CustomerDomain defines the interface for customer business logic.
type CustomerDomain interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	SearchCustomers(ctx context.Context, term string, limit int) ([]*model.Customer, error)
	ListCustomers(ctx context.Context, page, pageSize int) ([]*model.Customer, int64, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
}

// customerDomain implements CustomerDomain.
type customerDomain struct {
	customerDB outbound.CustomerDatabasePort
	logger     *zap.Logger
}

// NewCustomerDomain creates a new customer domain service.
func NewCustomerDomain(customerDB outbound.CustomerDatabasePort, logger *zap.Logger) CustomerDomain {
	return &customerDomain{
		customerDB: customerDB,
		logger:     logger,
	}
}

func (d *customerDomain) CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	if customer.Name == "" {
		return nil, ErrNameRequired
	}
	if customer.Phone == "" {
		return nil, ErrPhoneRequired
	}

	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if err := d.customerDB.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	d.logger.Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.Name))
	return customer, nil
}

func (d *customerDomain) GetCustomer(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := d.customerDB.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// SearchCustomers matches the term against customer names and phone
// numbers. A blank term returns no results rather than the full table.
func (d *customerDomain) SearchCustomers(ctx context.Context, term string, limit int) ([]*model.Customer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*model.Customer{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return d.customerDB.Search(ctx, term, limit)
}

func (d *customerDomain) ListCustomers(ctx context.Context, page, pageSize int) ([]*model.Customer, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return d.customerDB.List(ctx, page, pageSize)
}

func (d *customerDomain) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	existing, err := d.customerDB.GetByID(ctx, customer.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCustomerNotFound
	}
	return d.customerDB.Update(ctx, customer)
}
