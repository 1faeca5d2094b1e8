// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
)

// BusinessUnitRepository defines the interface for business unit persistence operations.
type BusinessUnitRepository interface {
	// Create creates a new business unit in the database.
	Create(ctx context.Context, unit *entity.BusinessUnit) error

	// FindByID retrieves a business unit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessUnit, error)

	// FindByName retrieves a business unit by its name.
	FindByName(ctx context.Context, name string) (*entity.BusinessUnit, error)

	// FindAll retrieves all business units ordered by code.
	FindAll(ctx context.Context) ([]*entity.BusinessUnit, error)

	// ExistsByCode checks whether a business unit with the given code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Update updates an existing business unit in the database.
	Update(ctx context.Context, unit *entity.BusinessUnit) error
}
