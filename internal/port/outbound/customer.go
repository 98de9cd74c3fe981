package outbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/washdesk/server/internal/model"
)

// CustomerDatabasePort defines the interface for customer database operations.
type CustomerDatabasePort interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Search(ctx context.Context, term string, limit int) ([]*model.Customer, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Customer, int64, error)
	Update(ctx context.Context, customer *model.Customer) error
}
