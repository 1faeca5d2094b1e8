// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledger-console/backend/internal/application/usecase/transaction"
	"github.com/ledger-console/backend/internal/domain/entity"
)

// AttachmentRequest represents one attached evidence file in request bodies.
type AttachmentRequest struct {
	FileName  string `json:"file_name" binding:"required"`
	SizeBytes int64  `json:"size_bytes" binding:"min=0"`
}

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date           string              `json:"date" binding:"required"`
	Type           string              `json:"type" binding:"required,oneof=income expense loan"`
	Category       string              `json:"category" binding:"required"`
	Project        string              `json:"project,omitempty"`
	ObjectType     string              `json:"object_type" binding:"required,oneof=partner employee"`
	ObjectName     string              `json:"object_name" binding:"required"`
	BusinessUnit   string              `json:"business_unit,omitempty"`
	Amount         int64               `json:"amount" binding:"required"`
	CostAllocation string              `json:"cost_allocation" binding:"required,oneof=direct indirect"`
	AllocationRule string              `json:"allocation_rule,omitempty"`
	PaymentStatus  string              `json:"payment_status,omitempty" binding:"omitempty,oneof=paid unpaid"`
	Description    string              `json:"description,omitempty"`
	Attachments    []AttachmentRequest `json:"attachments,omitempty"`
	Submit         bool                `json:"submit"`
}

// UpdateTransactionRequest represents the request body for saving changes to
// a transaction.
type UpdateTransactionRequest struct {
	Date           string              `json:"date" binding:"required"`
	Type           string              `json:"type" binding:"required,oneof=income expense loan"`
	Category       string              `json:"category" binding:"required"`
	Project        string              `json:"project,omitempty"`
	ObjectType     string              `json:"object_type" binding:"required,oneof=partner employee"`
	ObjectName     string              `json:"object_name" binding:"required"`
	BusinessUnit   string              `json:"business_unit,omitempty"`
	Amount         int64               `json:"amount" binding:"required"`
	CostAllocation string              `json:"cost_allocation" binding:"required,oneof=direct indirect"`
	AllocationRule string              `json:"allocation_rule,omitempty"`
	PaymentStatus  string              `json:"payment_status,omitempty" binding:"omitempty,oneof=paid unpaid"`
	Description    string              `json:"description,omitempty"`
	Attachments    []AttachmentRequest `json:"attachments,omitempty"`
}

// RejectTransactionRequest represents the request body for rejecting a
// transaction.
type RejectTransactionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// AllocationLineResponse represents one allocation line in API responses.
type AllocationLineResponse struct {
	BusinessUnit string  `json:"business_unit"`
	Percentage   float64 `json:"percentage"`
	Amount       int64   `json:"amount"`
}

// AttachmentResponse represents one attachment in API responses.
type AttachmentResponse struct {
	FileName   string    `json:"file_name"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string                   `json:"id"`
	Code            string                   `json:"code"`
	Date            string                   `json:"date"`
	Type            string                   `json:"type"`
	Category        string                   `json:"category"`
	Project         string                   `json:"project,omitempty"`
	ObjectType      string                   `json:"object_type"`
	ObjectName      string                   `json:"object_name"`
	BusinessUnit    string                   `json:"business_unit"`
	Amount          int64                    `json:"amount"`
	CostAllocation  string                   `json:"cost_allocation"`
	AllocationRule  string                   `json:"allocation_rule,omitempty"`
	Allocations     []AllocationLineResponse `json:"allocations,omitempty"`
	AttachmentCount int                      `json:"attachment_count"`
	Attachments     []AttachmentResponse     `json:"attachments,omitempty"`
	PaymentStatus   string                   `json:"payment_status"`
	ApprovalStatus  string                   `json:"approval_status"`
	RejectionReason string                   `json:"rejection_reason,omitempty"`
	Description     string                   `json:"description,omitempty"`
	CreatedBy       string                   `json:"created_by"`
	SubmittedAt     *time.Time               `json:"submitted_at,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// KPIResponse represents the headline totals over the filtered set.
type KPIResponse struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	TotalLoan    int64 `json:"total_loan"`
	Balance      int64 `json:"balance"`
}

// TransactionListResponse represents one page of transactions plus KPI totals.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	Total        int                   `json:"total"`
	TotalPages   int                   `json:"total_pages"`
	KPI          KPIResponse           `json:"kpi"`
}

// ToTransactionResponse converts a transaction use case output to its DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	allocations := ToAllocationLineResponses(t.Allocations)

	attachments := make([]AttachmentResponse, len(t.Attachments))
	for i, att := range t.Attachments {
		attachments[i] = AttachmentResponse{
			FileName:   att.FileName,
			SizeBytes:  att.SizeBytes,
			UploadedAt: att.UploadedAt,
		}
	}

	return TransactionResponse{
		ID:              t.ID.String(),
		Code:            t.Code,
		Date:            t.Date.Format("2006-01-02"),
		Type:            string(t.Type),
		Category:        t.Category,
		Project:         t.Project,
		ObjectType:      string(t.ObjectType),
		ObjectName:      t.ObjectName,
		BusinessUnit:    t.BusinessUnit,
		Amount:          t.Amount,
		CostAllocation:  string(t.CostAllocation),
		AllocationRule:  t.AllocationRule,
		Allocations:     allocations,
		AttachmentCount: t.AttachmentCount,
		Attachments:     attachments,
		PaymentStatus:   string(t.PaymentStatus),
		ApprovalStatus:  string(t.ApprovalStatus),
		RejectionReason: t.RejectionReason,
		Description:     t.Description,
		CreatedBy:       t.CreatedBy.String(),
		SubmittedAt:     t.SubmittedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list use case output to its DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Page:         output.Page,
		PageSize:     output.PageSize,
		Total:        output.Total,
		TotalPages:   output.TotalPages,
		KPI: KPIResponse{
			TotalIncome:  output.KPI.TotalIncome,
			TotalExpense: output.KPI.TotalExpense,
			TotalLoan:    output.KPI.TotalLoan,
			Balance:      output.KPI.Balance,
		},
	}
}

// ToAttachmentInputs converts attachment requests to use case inputs.
func ToAttachmentInputs(attachments []AttachmentRequest) []transaction.AttachmentInput {
	if len(attachments) == 0 {
		return nil
	}
	inputs := make([]transaction.AttachmentInput, len(attachments))
	for i, att := range attachments {
		inputs[i] = transaction.AttachmentInput{
			FileName:  att.FileName,
			SizeBytes: att.SizeBytes,
		}
	}
	return inputs
}

// ToAllocationLineResponses converts domain allocation lines to DTOs.
func ToAllocationLineResponses(lines []entity.AllocationLine) []AllocationLineResponse {
	responses := make([]AllocationLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = AllocationLineResponse{
			BusinessUnit: line.BusinessUnit,
			Percentage:   line.Percentage.InexactFloat64(),
			Amount:       line.Amount,
		}
	}
	return responses
}
