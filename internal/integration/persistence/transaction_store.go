// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/integration/persistence/model"
)

// transactionStore implements the adapter.TransactionStore interface on top
// of the transactions table. The unique index on the code column is the final
// authority for code collisions, so unique violations are surfaced as
// domainerror.ErrStoreConflict for the use case layer to retry against.
type transactionStore struct {
	db *gorm.DB
}

// NewTransactionStore creates a new transaction store instance.
func NewTransactionStore(db *gorm.DB) adapter.TransactionStore {
	return &transactionStore{
		db: db,
	}
}

// List retrieves every transaction ordered by creation time.
func (s *transactionStore) List(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := s.db.WithContext(ctx).Order("created_at ASC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transaction, err := transactionModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

// Create persists a new transaction.
func (s *transactionStore) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel, err := model.TransactionFromEntity(transaction)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return fmt.Errorf("code %s: %w", transaction.Code, domainerror.ErrStoreConflict)
		}
		return result.Error
	}
	return nil
}

// Update persists changes to an existing transaction.
func (s *transactionStore) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel, err := model.TransactionFromEntity(transaction)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return fmt.Errorf("code %s: %w", transaction.Code, domainerror.ErrStoreConflict)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction.
func (s *transactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// isUniqueViolation reports whether the database rejected a write because of
// a unique index. Postgres and sqlite word the error differently and gorm
// only translates some driver errors, so the message is checked as well.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
