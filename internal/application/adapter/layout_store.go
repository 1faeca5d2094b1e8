// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ColumnSetting is one column of a user's table layout: its identifier, its
// position (slice order) and whether it is shown.
type ColumnSetting struct {
	ID      string
	Visible bool
}

// LayoutStore persists per-user column layouts for the transaction table.
// Layouts survive session restarts and are resettable to the default order.
type LayoutStore interface {
	// Get retrieves the stored layout for a user. A nil slice with no error
	// means the user has never customized the layout.
	Get(ctx context.Context, userID uuid.UUID) ([]ColumnSetting, error)

	// Save stores the layout for a user, replacing any previous value.
	Save(ctx context.Context, userID uuid.UUID, columns []ColumnSetting) error

	// Reset removes the stored layout so the default order applies again.
	Reset(ctx context.Context, userID uuid.UUID) error
}
