package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
)

// customerAdapter implements outbound.CustomerDatabasePort.
type customerAdapter struct {
	db *gorm.DB
}

// NewCustomerAdapter creates a new customer database adapter.
func NewCustomerAdapter(db *gorm.DB) outbound.CustomerDatabasePort {
	return &customerAdapter{db: db}
}

func (a *customerAdapter) Create(ctx context.Context, customer *model.Customer) error {
	return a.db.WithContext(ctx).Create(customer).Error
}

func (a *customerAdapter) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := a.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (a *customerAdapter) Search(ctx context.Context, term string, limit int) ([]*model.Customer, error) {
	var customers []*model.Customer
	pattern := "%" + term + "%"
	err := a.db.WithContext(ctx).
		Where("name ILIKE ? OR phone LIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (a *customerAdapter) List(ctx context.Context, page, pageSize int) ([]*model.Customer, int64, error) {
	var customers []*model.Customer
	var total int64

	query := a.db.WithContext(ctx).Model(&model.Customer{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (a *customerAdapter) Update(ctx context.Context, customer *model.Customer) error {
	return a.db.WithContext(ctx).Save(customer).Error
}

// Compile-time check
var _ outbound.CustomerDatabasePort = (*customerAdapter)(nil)
