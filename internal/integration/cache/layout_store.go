// Package cache implements Redis-backed stores for per-user preferences.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ledger-console/backend/internal/application/adapter"
)

const layoutKeyPrefix = "layout:columns:"

// layoutStore implements the adapter.LayoutStore interface on Redis. Each
// user's column layout is one JSON value; absence of the key means the user
// has never customized the table.
type layoutStore struct {
	client *redis.Client
}

// NewLayoutStore creates a new Redis-backed layout store.
func NewLayoutStore(client *redis.Client) adapter.LayoutStore {
	return &layoutStore{
		client: client,
	}
}

// Get retrieves the stored layout for a user.
func (s *layoutStore) Get(ctx context.Context, userID uuid.UUID) ([]adapter.ColumnSetting, error) {
	payload, err := s.client.Get(ctx, layoutKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read column layout: %w", err)
	}

	var columns []adapter.ColumnSetting
	if err := json.Unmarshal([]byte(payload), &columns); err != nil {
		return nil, fmt.Errorf("failed to decode column layout: %w", err)
	}
	return columns, nil
}

// Save stores the layout for a user, replacing any previous value.
func (s *layoutStore) Save(ctx context.Context, userID uuid.UUID, columns []adapter.ColumnSetting) error {
	payload, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("failed to encode column layout: %w", err)
	}

	// Layouts have no natural expiry; they live until reset.
	if err := s.client.Set(ctx, layoutKey(userID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store column layout: %w", err)
	}
	return nil
}

// Reset removes the stored layout so the default order applies again.
func (s *layoutStore) Reset(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, layoutKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to reset column layout: %w", err)
	}
	return nil
}

func layoutKey(userID uuid.UUID) string {
	return layoutKeyPrefix + userID.String()
}
