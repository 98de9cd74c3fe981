package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
)

const draftKeyPrefix = "wizard:draft:"

// draftStore implements outbound.DraftStorePort on Redis. One key per
// staff user; the TTL doubles as a backstop for the expiry window
// checked in the domain layer.
type draftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore creates a new wizard draft store adapter.
func NewDraftStore(client *redis.Client, ttl time.Duration) outbound.DraftStorePort {
	return &draftStore{client: client, ttl: ttl}
}

func draftKey(userID uuid.UUID) string {
	return draftKeyPrefix + userID.String()
}

func (s *draftStore) Get(ctx context.Context, userID uuid.UUID) (*model.DraftEnvelope, error) {
	raw, err := s.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var envelope model.DraftEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &envelope, nil
}

func (s *draftStore) Set(ctx context.Context, userID uuid.UUID, envelope *model.DraftEnvelope) error {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return s.client.Set(ctx, draftKey(userID), raw, s.ttl).Err()
}

func (s *draftStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, draftKey(userID)).Err()
}

// Compile-time check
var _ outbound.DraftStorePort = (*draftStore)(nil)
