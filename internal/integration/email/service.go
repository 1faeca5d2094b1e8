// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - Ledger Console"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueApprovalRequestedEmail queues a notification to an approver that a
// transaction is waiting for review.
func (s *Service) QueueApprovalRequestedEmail(ctx context.Context, input adapter.QueueApprovalRequestedInput) error {
	subject := fmt.Sprintf("Transaction %s waiting for approval - Ledger Console", input.TransactionCode)

	templateData := map[string]interface{}{
		"approver_name":    input.ApproverName,
		"submitter_name":   input.SubmitterName,
		"transaction_code": input.TransactionCode,
		"transaction_type": input.TransactionType,
		"amount":           input.Amount,
		"review_url":       input.ReviewURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateApprovalRequested,
		input.ApproverEmail,
		input.ApproverName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue approval request email",
			err,
		)
	}

	return nil
}

// QueueApprovalResultEmail queues a notification to the submitter that a
// transaction was approved or rejected.
func (s *Service) QueueApprovalResultEmail(ctx context.Context, input adapter.QueueApprovalResultInput) error {
	outcome := "approved"
	if !input.Approved {
		outcome = "rejected"
	}
	subject := fmt.Sprintf("Transaction %s %s - Ledger Console", input.TransactionCode, outcome)

	templateData := map[string]interface{}{
		"submitter_name":   input.SubmitterName,
		"transaction_code": input.TransactionCode,
		"outcome":          outcome,
		"rejection_reason": input.RejectionReason,
		"detail_url":       input.DetailURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateApprovalResult,
		input.SubmitterEmail,
		input.SubmitterName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue approval result email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
