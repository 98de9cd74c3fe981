package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
)

// orderAdapter implements outbound.OrderDatabasePort.
type orderAdapter struct {
	db *gorm.DB
}

// NewOrderAdapter creates a new order database adapter.
func NewOrderAdapter(db *gorm.DB) outbound.OrderDatabasePort {
	return &orderAdapter{db: db}
}

func (a *orderAdapter) Create(ctx context.Context, order *model.Order) error {
	return a.db.WithContext(ctx).Create(order).Error
}

func (a *orderAdapter) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := a.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (a *orderAdapter) GetByIDWithItems(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := a.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (a *orderAdapter) List(ctx context.Context, filter *model.OrderFilter, page, pageSize int) ([]*model.Order, int64, error) {
	var orders []*model.Order
	var total int64

	query := a.db.WithContext(ctx).Model(&model.Order{})

	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", string(*filter.Status))
		}
		if filter.CustomerID != nil {
			query = query.Where("customer_id = ?", *filter.CustomerID)
		}
		if filter.AgentID != nil {
			query = query.Where("agent_id = ?", *filter.AgentID)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (a *orderAdapter) Update(ctx context.Context, order *model.Order) error {
	return a.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: false}).
		Omit("Items").
		Save(order).Error
}

func (a *orderAdapter) ReplaceItems(ctx context.Context, orderID uuid.UUID, items []*model.OrderLineItem) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderLineItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(items).Error
	})
}

// Compile-time check
var _ outbound.OrderDatabasePort = (*orderAdapter)(nil)
