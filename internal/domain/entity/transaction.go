// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/valueobject"
)

// TransactionType represents the type of transaction (income, expense or loan).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeLoan    TransactionType = "loan"
)

// CostAllocation represents how a transaction's cost is attributed to business units.
type CostAllocation string

const (
	CostAllocationDirect   CostAllocation = "direct"
	CostAllocationIndirect CostAllocation = "indirect"
)

// BusinessUnitAllocated is the business-unit label carried by indirect
// transactions: the attribution lives in the allocation lines, not in a single
// unit, and the field is not user-editable until the allocation flips back to
// direct.
const BusinessUnitAllocated = "allocated"

// PaymentStatus represents whether a transaction has been settled.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// ObjectType selects which counterparty list the object name is validated against.
type ObjectType string

const (
	ObjectTypePartner  ObjectType = "partner"
	ObjectTypeEmployee ObjectType = "employee"
)

// Attachment holds advisory metadata about an uploaded evidence file.
// No storage contract is implied; the list exists so the console can show
// what was attached when the transaction was recorded.
type Attachment struct {
	FileName   string
	SizeBytes  int64
	UploadedAt time.Time
}

// Transaction represents a financial event in the Ledger Console system.
// Amount is an integer number of VND; the currency has no fractional unit.
type Transaction struct {
	ID              uuid.UUID
	Code            string // human-readable code, unique within (type, month, year)
	Date            time.Time
	Type            TransactionType
	Category        string
	Project         string // optional project code, no referential integrity enforced
	ObjectType      ObjectType
	ObjectName      string
	BusinessUnit    string
	Amount          int64
	CostAllocation  CostAllocation
	AllocationRule  string
	Allocations     []AllocationLine // derived preview, always consistent with Amount+AllocationRule
	Attachments     []Attachment
	PaymentStatus   PaymentStatus
	ApprovalStatus  valueobject.ApprovalStatus
	RejectionReason string
	Description     string
	CreatedBy       uuid.UUID
	SubmittedAt     *time.Time // set on first submission; the code is frozen from then on
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new draft Transaction entity.
func NewTransaction(
	createdBy uuid.UUID,
	code string,
	date time.Time,
	transactionType TransactionType,
	category string,
	project string,
	objectType ObjectType,
	objectName string,
	businessUnit string,
	amount int64,
	costAllocation CostAllocation,
	allocationRule string,
	allocations []AllocationLine,
	paymentStatus PaymentStatus,
	description string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:             uuid.New(),
		Code:           code,
		Date:           date,
		Type:           transactionType,
		Category:       category,
		Project:        project,
		ObjectType:     objectType,
		ObjectName:     objectName,
		BusinessUnit:   businessUnit,
		Amount:         amount,
		CostAllocation: costAllocation,
		AllocationRule: allocationRule,
		Allocations:    allocations,
		PaymentStatus:  paymentStatus,
		ApprovalStatus: valueobject.ApprovalStatusDraft,
		Description:    description,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CodeFrozen reports whether the transaction code may no longer be regenerated.
// Codes are recomputed while a draft has never been submitted; after the first
// submission the code is part of the audit trail and stays fixed.
func (t *Transaction) CodeFrozen() bool {
	return t.SubmittedAt != nil
}

// AttachmentCount returns the number of attached evidence files.
func (t *Transaction) AttachmentCount() int {
	return len(t.Attachments)
}
