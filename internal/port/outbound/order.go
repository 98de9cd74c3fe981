package outbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/washdesk/server/internal/model"
)

// OrderDatabasePort defines the interface for order database operations.
type OrderDatabasePort interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	GetByIDWithItems(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter *model.OrderFilter, page, pageSize int) ([]*model.Order, int64, error)
	Update(ctx context.Context, order *model.Order) error
	ReplaceItems(ctx context.Context, orderID uuid.UUID, items []*model.OrderLineItem) error
}
