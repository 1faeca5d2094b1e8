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
)

// UpdateTransactionInput represents the input for updating a transaction.
type UpdateTransactionInput struct {
	UserID         uuid.UUID
	TransactionID  uuid.UUID
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
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles saving changes to an existing transaction.
type UpdateTransactionUseCase struct {
	store     adapter.TransactionStore
	snapshot  *Snapshot
	validator *validator
	ruleTable *entity.AllocationRuleTable
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	store adapter.TransactionStore,
	snapshot *Snapshot,
	categoryRepo adapter.CategoryRepository,
	counterpartyRepo adapter.CounterpartyRepository,
	ruleTable *entity.AllocationRuleTable,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		store:     store,
		snapshot:  snapshot,
		validator: newValidator(categoryRepo, counterpartyRepo),
		ruleTable: ruleTable,
	}
}

// Execute saves edits to a draft or rejected transaction. The approval status
// does not change on save; a rejected transaction stays rejected until it is
// resubmitted.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	current, err := uc.snapshot.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if current.CreatedBy != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotTransactionOwner,
			"only the creator can edit this transaction",
			domainerror.ErrNotTransactionOwner,
		)
	}

	if !current.ApprovalStatus.CanEdit() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionImmutable,
			"transaction can only be edited while draft or rejected",
			domainerror.ErrTransactionImmutable,
		)
	}

	if current.CodeFrozen() && input.Type != current.Type {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTypeChangeAfterSubmit,
			"transaction type cannot change once the code is frozen",
			domainerror.ErrTypeChangeAfterSubmit,
		)
	}

	updated := *current
	updated.Date = input.Date
	updated.Type = input.Type
	updated.Category = input.Category
	updated.Project = input.Project
	updated.ObjectType = input.ObjectType
	updated.ObjectName = input.ObjectName
	updated.Amount = input.Amount
	updated.CostAllocation = input.CostAllocation
	updated.PaymentStatus = input.PaymentStatus
	updated.Description = input.Description

	if input.CostAllocation == entity.CostAllocationIndirect {
		updated.BusinessUnit = entity.BusinessUnitAllocated
		updated.AllocationRule = input.AllocationRule
	} else {
		updated.BusinessUnit = input.BusinessUnit
		updated.AllocationRule = ""
		updated.Allocations = nil
	}

	updated.Attachments = nil
	for _, a := range input.Attachments {
		updated.Attachments = append(updated.Attachments, entity.Attachment{
			FileName:   a.FileName,
			SizeBytes:  a.SizeBytes,
			UploadedAt: time.Now().UTC(),
		})
	}

	if err := uc.validator.validate(ctx, &updated); err != nil {
		return nil, err
	}

	if updated.CostAllocation == entity.CostAllocationIndirect {
		lines, err := allocation.Compute(updated.Amount, updated.AllocationRule, uc.ruleTable)
		if err != nil {
			return nil, err
		}
		updated.Allocations = lines
	}

	// A never-submitted draft keeps its code in sync with its type and date;
	// once submitted, the code is fixed.
	if !updated.CodeFrozen() && (updated.Type != current.Type || !samePeriod(updated.Date, current.Date)) {
		existing, err := uc.snapshot.Transactions(ctx)
		if err != nil {
			return nil, err
		}
		others := make([]string, 0, len(existing))
		for _, t := range existing {
			if t.ID != updated.ID {
				others = append(others, t.Code)
			}
		}
		updated.Code = GenerateCode(updated.Type, updated.Date, others)
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := uc.store.Update(ctx, &updated); err != nil {
		if errors.Is(err, domainerror.ErrStoreConflict) {
			return nil, domainerror.NewStoreError(
				domainerror.ErrCodeStoreConflict,
				"transaction code already taken, retry the save",
				err,
			)
		}
		return nil, domainerror.NewStoreError(
			domainerror.ErrCodeStoreUpdate,
			"failed to update transaction",
			err,
		)
	}

	if err := uc.snapshot.Reload(ctx); err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{Transaction: newTransactionOutput(&updated)}, nil
}

// samePeriod reports whether two dates fall in the same code period (month and
// year).
func samePeriod(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
