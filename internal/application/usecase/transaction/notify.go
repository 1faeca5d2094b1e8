// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
)

// Notifier queues approval workflow emails. Notification failures are logged
// and swallowed: the state transition already happened and must not be rolled
// back because an email could not be queued.
type Notifier struct {
	emailService adapter.EmailService
	userRepo     adapter.UserRepository
	appBaseURL   string
}

func NewNotifier(emailService adapter.EmailService, userRepo adapter.UserRepository, appBaseURL string) *Notifier {
	return &Notifier{
		emailService: emailService,
		userRepo:     userRepo,
		appBaseURL:   appBaseURL,
	}
}

// notifySubmitted queues an approval request notice to every active approver
// and admin.
func (n *Notifier) notifySubmitted(ctx context.Context, t *entity.Transaction, submitter *entity.User) {
	if n == nil || n.emailService == nil {
		return
	}

	approvers := n.approvers(ctx)
	for _, approver := range approvers {
		input := adapter.QueueApprovalRequestedInput{
			ApproverEmail:   approver.Email,
			ApproverName:    approver.Name,
			SubmitterName:   submitter.Name,
			TransactionCode: t.Code,
			TransactionType: string(t.Type),
			Amount:          formatVND(t.Amount),
			ReviewURL:       fmt.Sprintf("%s/transactions/%s", n.appBaseURL, t.ID),
		}
		if err := n.emailService.QueueApprovalRequestedEmail(ctx, input); err != nil {
			slog.Error("failed to queue approval request email",
				"transaction_id", t.ID,
				"approver_email", approver.Email,
				"error", err,
			)
		}
	}
}

// notifyDecided queues an approval result notice to the transaction's creator.
func (n *Notifier) notifyDecided(ctx context.Context, t *entity.Transaction, approved bool) {
	if n == nil || n.emailService == nil {
		return
	}

	submitter, err := n.userRepo.FindByID(ctx, t.CreatedBy)
	if err != nil {
		slog.Error("failed to load submitter for approval result email",
			"transaction_id", t.ID,
			"user_id", t.CreatedBy,
			"error", err,
		)
		return
	}

	input := adapter.QueueApprovalResultInput{
		SubmitterEmail:  submitter.Email,
		SubmitterName:   submitter.Name,
		TransactionCode: t.Code,
		Approved:        approved,
		RejectionReason: t.RejectionReason,
		DetailURL:       fmt.Sprintf("%s/transactions/%s", n.appBaseURL, t.ID),
	}
	if err := n.emailService.QueueApprovalResultEmail(ctx, input); err != nil {
		slog.Error("failed to queue approval result email",
			"transaction_id", t.ID,
			"submitter_email", submitter.Email,
			"error", err,
		)
	}
}

func (n *Notifier) approvers(ctx context.Context) []*entity.User {
	var out []*entity.User
	for _, role := range []entity.UserRole{entity.UserRoleApprover, entity.UserRoleAdmin} {
		users, err := n.userRepo.FindByRole(ctx, role)
		if err != nil {
			slog.Error("failed to load approvers", "role", role, "error", err)
			continue
		}
		out = append(out, users...)
	}
	return out
}

// formatVND renders an integer VND amount with dot thousand separators, the
// way the console displays money.
func formatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return "-" + string(grouped) + " VND"
	}
	return string(grouped) + " VND"
}
