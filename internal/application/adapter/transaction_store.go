// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
)

// TransactionStore is the external Data Store boundary for transactions.
// Transport, auth and endpoint addressing belong to the implementation; the
// application layer only sees these four operations. The repository facade is
// the sole caller and performs a full List reload after every successful
// mutation, so the store never needs partial-read operations.
type TransactionStore interface {
	// List retrieves every transaction, ordered by creation time.
	List(ctx context.Context) ([]*entity.Transaction, error)

	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
