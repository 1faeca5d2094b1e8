// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles removing a transaction from the ledger.
type DeleteTransactionUseCase struct {
	store    adapter.TransactionStore
	snapshot *Snapshot
	userRepo adapter.UserRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	store adapter.TransactionStore,
	snapshot *Snapshot,
	userRepo adapter.UserRepository,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		store:    store,
		snapshot: snapshot,
		userRepo: userRepo,
	}
}

// Execute deletes a draft, pending or rejected transaction. Approved records
// are frozen and cancelled records are kept for audit; neither can be removed.
// Admins may delete any deletable transaction, other users only their own.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	current, err := uc.snapshot.FindByID(ctx, input.TransactionID)
	if err != nil {
		return err
	}

	if current.CreatedBy != input.UserID {
		actor, err := uc.userRepo.FindByID(ctx, input.UserID)
		if err != nil || actor.Role != entity.UserRoleAdmin {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeNotTransactionOwner,
				"only the creator or an admin can delete this transaction",
				domainerror.ErrNotTransactionOwner,
			)
		}
	}

	if !current.ApprovalStatus.CanDelete() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionImmutable,
			"approved and cancelled transactions cannot be deleted",
			domainerror.ErrTransactionImmutable,
		)
	}

	if err := uc.store.Delete(ctx, input.TransactionID); err != nil {
		return domainerror.NewStoreError(
			domainerror.ErrCodeStoreDelete,
			"failed to delete transaction",
			err,
		)
	}

	return uc.snapshot.Reload(ctx)
}
