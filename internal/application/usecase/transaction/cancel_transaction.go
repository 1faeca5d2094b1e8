// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/domain/valueobject"
)

// CancelTransactionInput represents the input for cancelling a transaction.
type CancelTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// CancelTransactionOutput represents the output of cancelling a transaction.
type CancelTransactionOutput struct {
	Transaction *TransactionOutput
}

// CancelTransactionUseCase handles withdrawing a transaction from the
// workflow.
type CancelTransactionUseCase struct {
	store    adapter.TransactionStore
	snapshot *Snapshot
}

// NewCancelTransactionUseCase creates a new CancelTransactionUseCase instance.
func NewCancelTransactionUseCase(store adapter.TransactionStore, snapshot *Snapshot) *CancelTransactionUseCase {
	return &CancelTransactionUseCase{
		store:    store,
		snapshot: snapshot,
	}
}

// Execute cancels a draft, pending or rejected transaction. Cancelled is
// terminal: the record stays in the ledger for audit but permits no further
// action and never contributes to the KPI figures.
func (uc *CancelTransactionUseCase) Execute(ctx context.Context, input CancelTransactionInput) (*CancelTransactionOutput, error) {
	current, err := uc.snapshot.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if current.CreatedBy != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotTransactionOwner,
			"only the creator can cancel this transaction",
			domainerror.ErrNotTransactionOwner,
		)
	}

	next, ok := valueobject.NextStatus(current.ApprovalStatus, valueobject.ActionCancel)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeIllegalTransition,
			"transaction cannot be cancelled from status "+string(current.ApprovalStatus),
			domainerror.ErrIllegalTransition,
		)
	}

	updated := *current
	updated.ApprovalStatus = next
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.store.Update(ctx, &updated); err != nil {
		return nil, domainerror.NewStoreError(
			domainerror.ErrCodeStoreUpdate,
			"failed to cancel transaction",
			err,
		)
	}

	if err := uc.snapshot.Reload(ctx); err != nil {
		return nil, err
	}

	return &CancelTransactionOutput{Transaction: newTransactionOutput(&updated)}, nil
}
