// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByType retrieves all active categories for a transaction type, ordered by name.
	FindByType(ctx context.Context, transactionType entity.TransactionType) ([]*entity.Category, error)

	// FindAll retrieves all categories ordered by type then name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// ExistsByNameAndType checks whether a category with the name exists for the type.
	ExistsByNameAndType(ctx context.Context, name string, transactionType entity.TransactionType) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
