package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-seller-service/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DraftStore implements ports.DraftStore using Redis. Drafts expire on their
// own after the TTL; abandoned registrations leave nothing behind.
type DraftStore struct {
	client *goredis.Client
	prefix string
}

// NewDraftStore creates a new Redis-backed registration draft store.
func NewDraftStore(client *goredis.Client) *DraftStore {
	return &DraftStore{
		client: client,
		prefix: "seller:draft:",
	}
}

// Get retrieves a user's in-progress draft.
// Returns nil, nil if no draft exists.
func (s *DraftStore) Get(ctx context.Context, userID uuid.UUID) (*domain.RegistrationDraft, error) {
	val, err := s.client.Get(ctx, s.prefix+userID.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis draft get: %w", err)
	}

	var draft domain.RegistrationDraft
	if err := json.Unmarshal(val, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

// Save stores the draft with TTL. Each save restarts the expiry clock.
func (s *DraftStore) Save(ctx context.Context, userID uuid.UUID, draft *domain.RegistrationDraft, ttl time.Duration) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+userID.String(), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis draft set: %w", err)
	}
	return nil
}

// Delete removes the draft.
func (s *DraftStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, s.prefix+userID.String()).Err(); err != nil {
		return fmt.Errorf("redis draft del: %w", err)
	}
	return nil
}
