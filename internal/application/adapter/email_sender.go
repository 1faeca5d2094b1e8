// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing notification emails.
type EmailService interface {
	// QueuePasswordResetEmail queues a password reset email.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error

	// QueueApprovalRequestedEmail queues a notification to an approver that a
	// transaction is waiting for review.
	QueueApprovalRequestedEmail(ctx context.Context, input QueueApprovalRequestedInput) error

	// QueueApprovalResultEmail queues a notification to the submitter that a
	// transaction was approved or rejected.
	QueueApprovalResultEmail(ctx context.Context, input QueueApprovalResultInput) error
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueueApprovalRequestedInput represents the input for queueing an approval request notice.
type QueueApprovalRequestedInput struct {
	ApproverEmail   string
	ApproverName    string
	SubmitterName   string
	TransactionCode string
	TransactionType string
	Amount          string
	ReviewURL       string
}

// QueueApprovalResultInput represents the input for queueing an approval result notice.
type QueueApprovalResultInput struct {
	SubmitterEmail  string
	SubmitterName   string
	TransactionCode string
	Approved        bool
	RejectionReason string
	DetailURL       string
}
