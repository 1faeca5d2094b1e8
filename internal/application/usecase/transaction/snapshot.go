// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// Snapshot is the facade's in-memory view of the full transaction set.
//
// Every mutating use case performs its store call and then asks the snapshot
// for a full reload, so the view always matches the store after a confirmed
// write; there is no optimistic partial patching. Readers get copies of the
// slice; the cached collection itself is never handed out for mutation.
type Snapshot struct {
	store adapter.TransactionStore

	mu           sync.RWMutex
	transactions []*entity.Transaction
	loaded       bool
}

// NewSnapshot creates a snapshot backed by the given store. The first access
// triggers a load.
func NewSnapshot(store adapter.TransactionStore) *Snapshot {
	return &Snapshot{store: store}
}

// Reload replaces the cached set with the store's authoritative contents.
func (s *Snapshot) Reload(ctx context.Context) error {
	transactions, err := s.store.List(ctx)
	if err != nil {
		return domainerror.NewStoreError(
			domainerror.ErrCodeStoreList,
			"failed to load transactions",
			err,
		)
	}

	s.mu.Lock()
	s.transactions = transactions
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Transactions returns a copy of the cached set in insertion order, loading it
// on first use.
func (s *Snapshot) Transactions(ctx context.Context) ([]*entity.Transaction, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.Reload(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

// FindByID returns the cached transaction with the given ID.
func (s *Snapshot) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transactions, err := s.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	for _, t := range transactions {
		if t.ID == id {
			return t, nil
		}
	}

	return nil, domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
