// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/domain/valueobject"
)

// RejectTransactionInput represents the input for rejecting a transaction.
type RejectTransactionInput struct {
	ApproverID    uuid.UUID
	TransactionID uuid.UUID
	Reason        string
}

// RejectTransactionOutput represents the output of rejecting a transaction.
type RejectTransactionOutput struct {
	Transaction *TransactionOutput
}

// RejectTransactionUseCase handles the rejection decision on a pending
// transaction.
type RejectTransactionUseCase struct {
	store    adapter.TransactionStore
	snapshot *Snapshot
	userRepo adapter.UserRepository
	notifier *Notifier
}

// NewRejectTransactionUseCase creates a new RejectTransactionUseCase instance.
func NewRejectTransactionUseCase(
	store adapter.TransactionStore,
	snapshot *Snapshot,
	userRepo adapter.UserRepository,
	notifier *Notifier,
) *RejectTransactionUseCase {
	return &RejectTransactionUseCase{
		store:    store,
		snapshot: snapshot,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Execute rejects a pending transaction with a mandatory reason. The record
// goes back to the creator, who can edit and resubmit it.
func (uc *RejectTransactionUseCase) Execute(ctx context.Context, input RejectTransactionInput) (*RejectTransactionOutput, error) {
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

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingRejectionReason,
			"a rejection must carry a reason",
			domainerror.ErrMissingRejectionReason,
		)
	}

	current, err := uc.snapshot.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	next, ok := valueobject.NextStatus(current.ApprovalStatus, valueobject.ActionReject)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeIllegalTransition,
			"transaction cannot be rejected from status "+string(current.ApprovalStatus),
			domainerror.ErrIllegalTransition,
		)
	}

	updated := *current
	updated.ApprovalStatus = next
	updated.RejectionReason = reason
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.store.Update(ctx, &updated); err != nil {
		return nil, domainerror.NewStoreError(
			domainerror.ErrCodeStoreUpdate,
			"failed to reject transaction",
			err,
		)
	}

	if err := uc.snapshot.Reload(ctx); err != nil {
		return nil, err
	}

	uc.notifier.notifyDecided(ctx, &updated, false)

	return &RejectTransactionOutput{Transaction: newTransactionOutput(&updated)}, nil
}
