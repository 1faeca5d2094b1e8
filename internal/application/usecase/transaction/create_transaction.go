// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/application/usecase/allocation"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/domain/valueobject"
)

// AttachmentInput represents one attached evidence file in use case input.
type AttachmentInput struct {
	FileName  string
	SizeBytes int64
}

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	UserID         uuid.UUID
	Date           time.Time
	Type           entity.TransactionType
	Category       string
	Project        string
	ObjectType     entity.ObjectType
	ObjectName     string
	BusinessUnit   string
	Amount         int64
	CostAllocation entity.CostAllocation
	AllocationRule string
	PaymentStatus  entity.PaymentStatus
	Description    string
	Attachments    []AttachmentInput
	SubmitNow      bool
}

// CreateTransactionOutput represents the output of creating a transaction.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles the creation of new transactions.
type CreateTransactionUseCase struct {
	store     adapter.TransactionStore
	snapshot  *Snapshot
	validator *validator
	ruleTable *entity.AllocationRuleTable
	userRepo  adapter.UserRepository
	notifier  *Notifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	store adapter.TransactionStore,
	snapshot *Snapshot,
	categoryRepo adapter.CategoryRepository,
	counterpartyRepo adapter.CounterpartyRepository,
	ruleTable *entity.AllocationRuleTable,
	userRepo adapter.UserRepository,
	notifier *Notifier,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		store:     store,
		snapshot:  snapshot,
		validator: newValidator(categoryRepo, counterpartyRepo),
		ruleTable: ruleTable,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// Execute creates a transaction as a draft, or submits it for approval in the
// same step when SubmitNow is set. The code is derived from the transaction's
// own date against the current snapshot.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	// Indirect transactions carry no single business unit; the attribution is
	// the allocation preview.
	businessUnit := input.BusinessUnit
	allocationRule := input.AllocationRule
	if input.CostAllocation == entity.CostAllocationIndirect {
		businessUnit = entity.BusinessUnitAllocated
	} else {
		allocationRule = ""
	}

	// A freshly recorded entry is not settled yet; payment status must be
	// marked paid explicitly.
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusUnpaid
	}

	transaction := entity.NewTransaction(
		input.UserID,
		"", // code assigned after validation
		input.Date,
		input.Type,
		input.Category,
		input.Project,
		input.ObjectType,
		input.ObjectName,
		businessUnit,
		input.Amount,
		input.CostAllocation,
		allocationRule,
		nil,
		paymentStatus,
		input.Description,
	)

	for _, a := range input.Attachments {
		transaction.Attachments = append(transaction.Attachments, entity.Attachment{
			FileName:   a.FileName,
			SizeBytes:  a.SizeBytes,
			UploadedAt: transaction.CreatedAt,
		})
	}

	if err := uc.validator.validate(ctx, transaction); err != nil {
		return nil, err
	}

	if input.CostAllocation == entity.CostAllocationIndirect {
		lines, err := allocation.Compute(transaction.Amount, transaction.AllocationRule, uc.ruleTable)
		if err != nil {
			return nil, err
		}
		transaction.Allocations = lines
	}

	if input.SubmitNow {
		now := time.Now().UTC()
		transaction.SubmittedAt = &now
		transaction.ApprovalStatus = valueobject.ApprovalStatusPending
	}

	if err := uc.createWithCode(ctx, transaction); err != nil {
		return nil, err
	}

	if err := uc.snapshot.Reload(ctx); err != nil {
		return nil, err
	}

	if transaction.ApprovalStatus == valueobject.ApprovalStatusPending {
		submitter, err := uc.userRepo.FindByID(ctx, input.UserID)
		if err == nil {
			uc.notifier.notifySubmitted(ctx, transaction, submitter)
		}
	}

	return &CreateTransactionOutput{Transaction: newTransactionOutput(transaction)}, nil
}

// createWithCode assigns a code from the current snapshot and persists the
// transaction. The unique index on code is the arbiter under concurrent
// creates: on a conflict the snapshot is reloaded and the insert is retried
// once with a freshly generated code.
func (uc *CreateTransactionUseCase) createWithCode(ctx context.Context, transaction *entity.Transaction) error {
	for attempt := 0; attempt < 2; attempt++ {
		existing, err := uc.snapshot.Transactions(ctx)
		if err != nil {
			return err
		}
		transaction.Code = GenerateCode(transaction.Type, transaction.Date, codesOf(existing))

		err = uc.store.Create(ctx, transaction)
		if err == nil {
			return nil
		}
		if errors.Is(err, domainerror.ErrStoreConflict) {
			if attempt == 0 {
				if err := uc.snapshot.Reload(ctx); err != nil {
					return err
				}
				continue
			}
			return domainerror.NewStoreError(
				domainerror.ErrCodeStoreConflict,
				"transaction code already taken, retry the save",
				err,
			)
		}
		return domainerror.NewStoreError(
			domainerror.ErrCodeStoreCreate,
			"failed to create transaction",
			err,
		)
	}
	return nil
}
