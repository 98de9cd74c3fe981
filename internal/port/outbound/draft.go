package outbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/washdesk/server/internal/model"
)

// DraftStorePort defines the interface for wizard draft persistence.
// The store holds at most one envelope per staff user; Set fully
// overwrites any prior value.
type DraftStorePort interface {
	// Get returns the stored envelope, or nil when no draft exists.
	Get(ctx context.Context, userID uuid.UUID) (*model.DraftEnvelope, error)
	Set(ctx context.Context, userID uuid.UUID, envelope *model.DraftEnvelope) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
