// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
	"github.com/ledger-console/backend/internal/domain/valueobject"
)

// TransactionOutput represents a single transaction in use case output.
type TransactionOutput struct {
	ID              uuid.UUID
	Code            string
	Date            time.Time
	Type            entity.TransactionType
	Category        string
	Project         string
	ObjectType      entity.ObjectType
	ObjectName      string
	BusinessUnit    string
	Amount          int64
	CostAllocation  entity.CostAllocation
	AllocationRule  string
	Allocations     []entity.AllocationLine
	AttachmentCount int
	Attachments     []entity.Attachment
	PaymentStatus   entity.PaymentStatus
	ApprovalStatus  valueobject.ApprovalStatus
	RejectionReason string
	Description     string
	CreatedBy       uuid.UUID
	SubmittedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// newTransactionOutput maps a transaction entity to its output form.
func newTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:              t.ID,
		Code:            t.Code,
		Date:            t.Date,
		Type:            t.Type,
		Category:        t.Category,
		Project:         t.Project,
		ObjectType:      t.ObjectType,
		ObjectName:      t.ObjectName,
		BusinessUnit:    t.BusinessUnit,
		Amount:          t.Amount,
		CostAllocation:  t.CostAllocation,
		AllocationRule:  t.AllocationRule,
		Allocations:     t.Allocations,
		AttachmentCount: t.AttachmentCount(),
		Attachments:     t.Attachments,
		PaymentStatus:   t.PaymentStatus,
		ApprovalStatus:  t.ApprovalStatus,
		RejectionReason: t.RejectionReason,
		Description:     t.Description,
		CreatedBy:       t.CreatedBy,
		SubmittedAt:     t.SubmittedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
