// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
)

// CounterpartyRepository defines the interface for counterparty persistence operations.
type CounterpartyRepository interface {
	// Create creates a new counterparty in the database.
	Create(ctx context.Context, counterparty *entity.Counterparty) error

	// FindByID retrieves a counterparty by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Counterparty, error)

	// FindByType retrieves all active counterparties of the given type, ordered by name.
	FindByType(ctx context.Context, objectType entity.ObjectType) ([]*entity.Counterparty, error)

	// ExistsByNameAndType checks whether an active counterparty with the name
	// exists for the type.
	ExistsByNameAndType(ctx context.Context, name string, objectType entity.ObjectType) (bool, error)

	// Update updates an existing counterparty in the database.
	Update(ctx context.Context, counterparty *entity.Counterparty) error

	// Delete removes a counterparty from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
