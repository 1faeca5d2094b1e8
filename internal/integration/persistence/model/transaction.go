// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
	"github.com/ledger-console/backend/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
// Allocation lines and attachment metadata are stored as JSON text so the
// model works against both postgres and the sqlite test database. The unique
// index on Code is the authority for code collisions between concurrent
// sessions.
type TransactionModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code            string     `gorm:"type:varchar(12);uniqueIndex;not null"`
	Date            time.Time  `gorm:"type:date;not null;index"`
	Type            string     `gorm:"type:varchar(10);not null;index"`
	Category        string     `gorm:"type:varchar(100);not null"`
	Project         string     `gorm:"type:varchar(100)"`
	ObjectType      string     `gorm:"type:varchar(10);not null"`
	ObjectName      string     `gorm:"type:varchar(255);not null"`
	BusinessUnit    string     `gorm:"type:varchar(100);index"`
	Amount          int64      `gorm:"not null"`
	CostAllocation  string     `gorm:"type:varchar(10);not null"`
	AllocationRule  string     `gorm:"type:varchar(100)"`
	Allocations     string     `gorm:"type:text"`
	Attachments     string     `gorm:"type:text"`
	PaymentStatus   string     `gorm:"type:varchar(10);not null"`
	ApprovalStatus  string     `gorm:"type:varchar(10);not null;index"`
	RejectionReason string     `gorm:"type:text"`
	Description     string     `gorm:"type:text"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubmittedAt     *time.Time `gorm:"type:timestamp"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() (*entity.Transaction, error) {
	var allocations []entity.AllocationLine
	if m.Allocations != "" {
		if err := json.Unmarshal([]byte(m.Allocations), &allocations); err != nil {
			return nil, fmt.Errorf("failed to decode allocation lines for %s: %w", m.Code, err)
		}
	}

	var attachments []entity.Attachment
	if m.Attachments != "" {
		if err := json.Unmarshal([]byte(m.Attachments), &attachments); err != nil {
			return nil, fmt.Errorf("failed to decode attachments for %s: %w", m.Code, err)
		}
	}

	return &entity.Transaction{
		ID:              m.ID,
		Code:            m.Code,
		Date:            m.Date,
		Type:            entity.TransactionType(m.Type),
		Category:        m.Category,
		Project:         m.Project,
		ObjectType:      entity.ObjectType(m.ObjectType),
		ObjectName:      m.ObjectName,
		BusinessUnit:    m.BusinessUnit,
		Amount:          m.Amount,
		CostAllocation:  entity.CostAllocation(m.CostAllocation),
		AllocationRule:  m.AllocationRule,
		Allocations:     allocations,
		Attachments:     attachments,
		PaymentStatus:   entity.PaymentStatus(m.PaymentStatus),
		ApprovalStatus:  valueobject.ApprovalStatus(m.ApprovalStatus),
		RejectionReason: m.RejectionReason,
		Description:     m.Description,
		CreatedBy:       m.CreatedBy,
		SubmittedAt:     m.SubmittedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) (*TransactionModel, error) {
	var allocations string
	if len(transaction.Allocations) > 0 {
		encoded, err := json.Marshal(transaction.Allocations)
		if err != nil {
			return nil, fmt.Errorf("failed to encode allocation lines: %w", err)
		}
		allocations = string(encoded)
	}

	var attachments string
	if len(transaction.Attachments) > 0 {
		encoded, err := json.Marshal(transaction.Attachments)
		if err != nil {
			return nil, fmt.Errorf("failed to encode attachments: %w", err)
		}
		attachments = string(encoded)
	}

	return &TransactionModel{
		ID:              transaction.ID,
		Code:            transaction.Code,
		Date:            transaction.Date,
		Type:            string(transaction.Type),
		Category:        transaction.Category,
		Project:         transaction.Project,
		ObjectType:      string(transaction.ObjectType),
		ObjectName:      transaction.ObjectName,
		BusinessUnit:    transaction.BusinessUnit,
		Amount:          transaction.Amount,
		CostAllocation:  string(transaction.CostAllocation),
		AllocationRule:  transaction.AllocationRule,
		Allocations:     allocations,
		Attachments:     attachments,
		PaymentStatus:   string(transaction.PaymentStatus),
		ApprovalStatus:  string(transaction.ApprovalStatus),
		RejectionReason: transaction.RejectionReason,
		Description:     transaction.Description,
		CreatedBy:       transaction.CreatedBy,
		SubmittedAt:     transaction.SubmittedAt,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}, nil
}
