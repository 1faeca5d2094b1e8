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

// ApproveTransactionInput represents the input for approving a transaction.
type ApproveTransactionInput struct {
	ApproverID    uuid.UUID
	TransactionID uuid.UUID
}

// ApproveTransactionOutput represents the output of approving a transaction.
type ApproveTransactionOutput struct {
	Transaction *TransactionOutput
}

// ApproveTransactionUseCase handles the approval decision on a pending
// transaction.
type ApproveTransactionUseCase struct {
	store    adapter.TransactionStore
	snapshot *Snapshot
	userRepo adapter.UserRepository
	notifier *Notifier
}

// NewApproveTransactionUseCase creates a new ApproveTransactionUseCase instance.
func NewApproveTransactionUseCase(
	store adapter.TransactionStore,
	snapshot *Snapshot,
	userRepo adapter.UserRepository,
	notifier *Notifier,
) *ApproveTransactionUseCase {
	return &ApproveTransactionUseCase{
		store:    store,
		snapshot: snapshot,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Execute approves a pending transaction. Approved is terminal: the record
// becomes immutable and enters the KPI figures.
func (uc *ApproveTransactionUseCase) Execute(ctx context.Context, input ApproveTransactionInput) (*ApproveTransactionOutput, error) {
	approver, err := uc.userRepo.FindByID(ctx, input.ApproverID)
	if err != nil {
		return nil, err
	}
	if !approver.CanApprove() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInsufficientRole,
			"only approvers can decide on pending transactions",
			domainerror.ErrInsufficientRole,
		)
	}

	current, err := uc.snapshot.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	next, ok := valueobject.NextStatus(current.ApprovalStatus, valueobject.ActionApprove)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeIllegalTransition,
			"transaction cannot be approved from status "+string(current.ApprovalStatus),
			domainerror.ErrIllegalTransition,
		)
	}

	updated := *current
	updated.ApprovalStatus = next
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.store.Update(ctx, &updated); err != nil {
		return nil, domainerror.NewStoreError(
			domainerror.ErrCodeStoreUpdate,
			"failed to approve transaction",
			err,
		)
	}

	if err := uc.snapshot.Reload(ctx); err != nil {
		return nil, err
	}

	uc.notifier.notifyDecided(ctx, &updated, true)

	return &ApproveTransactionOutput{Transaction: newTransactionOutput(&updated)}, nil
}
