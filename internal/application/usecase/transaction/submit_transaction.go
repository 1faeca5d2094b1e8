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

// SubmitTransactionInput represents the input for submitting a transaction.
type SubmitTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// SubmitTransactionOutput represents the output of submitting a transaction.
type SubmitTransactionOutput struct {
	Transaction *TransactionOutput
}

// SubmitTransactionUseCase moves a draft or rejected transaction into the
// approval queue.
type SubmitTransactionUseCase struct {
	store     adapter.TransactionStore
	snapshot  *Snapshot
	validator *validator
	userRepo  adapter.UserRepository
	notifier  *Notifier
}

// NewSubmitTransactionUseCase creates a new SubmitTransactionUseCase instance.
func NewSubmitTransactionUseCase(
	store adapter.TransactionStore,
	snapshot *Snapshot,
	categoryRepo adapter.CategoryRepository,
	counterpartyRepo adapter.CounterpartyRepository,
	userRepo adapter.UserRepository,
	notifier *Notifier,
) *SubmitTransactionUseCase {
	return &SubmitTransactionUseCase{
		store:     store,
		snapshot:  snapshot,
		validator: newValidator(categoryRepo, counterpartyRepo),
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// Execute submits the transaction for approval. Submission revalidates every
// field rule, so an incomplete draft cannot enter the queue. Resubmitting a
// rejected transaction clears the stored rejection reason.
func (uc *SubmitTransactionUseCase) Execute(ctx context.Context, input SubmitTransactionInput) (*SubmitTransactionOutput, error) {
	current, err := uc.snapshot.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if current.CreatedBy != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotTransactionOwner,
			"only the creator can submit this transaction",
			domainerror.ErrNotTransactionOwner,
		)
	}

	next, ok := valueobject.NextStatus(current.ApprovalStatus, valueobject.ActionSubmit)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeIllegalTransition,
			"transaction cannot be submitted from status "+string(current.ApprovalStatus),
			domainerror.ErrIllegalTransition,
		)
	}

	if err := uc.validator.validate(ctx, current); err != nil {
		return nil, err
	}

	updated := *current
	updated.ApprovalStatus = next
	updated.RejectionReason = ""
	now := time.Now().UTC()
	if updated.SubmittedAt == nil {
		updated.SubmittedAt = &now
	}
	updated.UpdatedAt = now

	if err := uc.store.Update(ctx, &updated); err != nil {
		return nil, domainerror.NewStoreError(
			domainerror.ErrCodeStoreUpdate,
			"failed to submit transaction",
			err,
		)
	}

	if err := uc.snapshot.Reload(ctx); err != nil {
		return nil, err
	}

	submitter, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err == nil {
		uc.notifier.notifySubmitted(ctx, &updated, submitter)
	}

	return &SubmitTransactionOutput{Transaction: newTransactionOutput(&updated)}, nil
}
