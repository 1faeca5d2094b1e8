package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/domain/valueobject"
)

type testEnv struct {
	store            *fakeStore
	snapshot         *Snapshot
	categoryRepo     *fakeCategoryRepo
	counterpartyRepo *fakeCounterpartyRepo
	userRepo         *fakeUserRepo
	emails           *fakeEmailService
	notifier         *Notifier
	ruleTable        *entity.AllocationRuleTable

	staff    *entity.User
	approver *entity.User
	admin    *entity.User

	create *CreateTransactionUseCase
	update *UpdateTransactionUseCase
	submit *SubmitTransactionUseCase
	approve *ApproveTransactionUseCase
	reject *RejectTransactionUseCase
	cancel *CancelTransactionUseCase
	delete *DeleteTransactionUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	staff := entity.NewUser("staff@ledger.test", "Staff", "hash")
	approver := entity.NewUser("approver@ledger.test", "Approver", "hash")
	approver.Role = entity.UserRoleApprover
	admin := entity.NewUser("admin@ledger.test", "Admin", "hash")
	admin.Role = entity.UserRoleAdmin

	env := &testEnv{
		store: newFakeStore(),
		categoryRepo: &fakeCategoryRepo{categories: []*entity.Category{
			{ID: uuid.New(), Name: "Office supplies", Type: entity.TransactionTypeExpense, IsActive: true},
			{ID: uuid.New(), Name: "Consulting revenue", Type: entity.TransactionTypeIncome, IsActive: true},
			{ID: uuid.New(), Name: "Bridge loan", Type: entity.TransactionTypeLoan, IsActive: true},
		}},
		counterpartyRepo: &fakeCounterpartyRepo{names: map[entity.ObjectType][]string{
			entity.ObjectTypePartner:  {"ACME Ltd", "Globex"},
			entity.ObjectTypeEmployee: {"Dana Vo"},
		}},
		userRepo: &fakeUserRepo{users: map[uuid.UUID]*entity.User{
			staff.ID:    staff,
			approver.ID: approver,
			admin.ID:    admin,
		}},
		emails:    &fakeEmailService{},
		ruleTable: entity.NewAllocationRuleTable(entity.DefaultAllocationRules()),
		staff:     staff,
		approver:  approver,
		admin:     admin,
	}

	env.snapshot = NewSnapshot(env.store)
	env.notifier = NewNotifier(env.emails, env.userRepo, "https://console.ledger.test")

	env.create = NewCreateTransactionUseCase(env.store, env.snapshot, env.categoryRepo, env.counterpartyRepo, env.ruleTable, env.userRepo, env.notifier)
	env.update = NewUpdateTransactionUseCase(env.store, env.snapshot, env.categoryRepo, env.counterpartyRepo, env.ruleTable)
	env.submit = NewSubmitTransactionUseCase(env.store, env.snapshot, env.categoryRepo, env.counterpartyRepo, env.userRepo, env.notifier)
	env.approve = NewApproveTransactionUseCase(env.store, env.snapshot, env.userRepo, env.notifier)
	env.reject = NewRejectTransactionUseCase(env.store, env.snapshot, env.userRepo, env.notifier)
	env.cancel = NewCancelTransactionUseCase(env.store, env.snapshot)
	env.delete = NewDeleteTransactionUseCase(env.store, env.snapshot, env.userRepo)

	return env
}

func (env *testEnv) validExpense() CreateTransactionInput {
	return CreateTransactionInput{
		UserID:         env.staff.ID,
		Date:           date(2025, time.January, 10),
		Type:           entity.TransactionTypeExpense,
		Category:       "Office supplies",
		ObjectType:     entity.ObjectTypePartner,
		ObjectName:     "ACME Ltd",
		BusinessUnit:   "BU-North",
		Amount:         1_500_000,
		CostAllocation: entity.CostAllocationDirect,
		Description:    "printer paper",
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a draft with a generated code", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.create.Execute(ctx, env.validExpense())
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		got := out.Transaction
		if got.Code != "C0125_01" {
			t.Errorf("code = %q, want C0125_01", got.Code)
		}
		if got.ApprovalStatus != valueobject.ApprovalStatusDraft {
			t.Errorf("status = %q, want draft", got.ApprovalStatus)
		}
		if got.SubmittedAt != nil {
			t.Error("draft should have no submission time")
		}
		if len(env.emails.requested) != 0 {
			t.Errorf("draft creation queued %d emails, want 0", len(env.emails.requested))
		}
	})

	t.Run("sequence advances per type and period", func(t *testing.T) {
		env := newTestEnv(t)

		if _, err := env.create.Execute(ctx, env.validExpense()); err != nil {
			t.Fatalf("first create: %v", err)
		}
		out, err := env.create.Execute(ctx, env.validExpense())
		if err != nil {
			t.Fatalf("second create: %v", err)
		}
		if out.Transaction.Code != "C0125_02" {
			t.Errorf("code = %q, want C0125_02", out.Transaction.Code)
		}
	})

	t.Run("submit now goes straight to pending and notifies approvers", func(t *testing.T) {
		env := newTestEnv(t)

		input := env.validExpense()
		input.SubmitNow = true
		out, err := env.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if out.Transaction.ApprovalStatus != valueobject.ApprovalStatusPending {
			t.Errorf("status = %q, want pending", out.Transaction.ApprovalStatus)
		}
		if out.Transaction.SubmittedAt == nil {
			t.Error("submitted transaction should record its submission time")
		}
		// One approver plus one admin.
		if len(env.emails.requested) != 2 {
			t.Errorf("queued %d approval request emails, want 2", len(env.emails.requested))
		}
	})

	t.Run("indirect allocation computes the preview and fixes the business unit", func(t *testing.T) {
		env := newTestEnv(t)

		input := env.validExpense()
		input.CostAllocation = entity.CostAllocationIndirect
		input.AllocationRule = "headcount"
		input.BusinessUnit = ""
		input.Amount = 10_000_001

		out, err := env.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		got := out.Transaction
		if got.BusinessUnit != entity.BusinessUnitAllocated {
			t.Errorf("businessUnit = %q, want %q", got.BusinessUnit, entity.BusinessUnitAllocated)
		}
		var sum int64
		for _, line := range got.Allocations {
			sum += line.Amount
		}
		if sum != input.Amount {
			t.Errorf("allocation lines sum to %d, want %d", sum, input.Amount)
		}
	})

	t.Run("payment status defaults to unpaid", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.create.Execute(ctx, env.validExpense())
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Transaction.PaymentStatus != entity.PaymentStatusUnpaid {
			t.Errorf("paymentStatus = %q, want unpaid", out.Transaction.PaymentStatus)
		}

		input := env.validExpense()
		input.PaymentStatus = entity.PaymentStatusPaid
		out, err = env.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Transaction.PaymentStatus != entity.PaymentStatusPaid {
			t.Errorf("paymentStatus = %q, want paid as given", out.Transaction.PaymentStatus)
		}
	})

	t.Run("stale snapshot retries with a fresh code", func(t *testing.T) {
		env := newTestEnv(t)

		// Load the snapshot while the store is empty, then slip a row in
		// behind its back so the first generated code collides.
		if _, err := env.snapshot.Transactions(ctx); err != nil {
			t.Fatalf("initial load: %v", err)
		}
		seeded := entity.NewTransaction(
			env.staff.ID, "C0125_01", date(2025, time.January, 5),
			entity.TransactionTypeExpense, "Office supplies", "",
			entity.ObjectTypePartner, "ACME Ltd", "BU-North",
			900_000, entity.CostAllocationDirect, "", nil,
			entity.PaymentStatusPaid, "",
		)
		if err := env.store.Create(ctx, seeded); err != nil {
			t.Fatalf("seed: %v", err)
		}

		out, err := env.create.Execute(ctx, env.validExpense())
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Transaction.Code != "C0125_02" {
			t.Errorf("code = %q, want C0125_02", out.Transaction.Code)
		}
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CreateTransactionInput)
			want   error
		}{
			{
				name:   "zero amount",
				mutate: func(in *CreateTransactionInput) { in.Amount = 0 },
				want:   domainerror.ErrNonPositiveAmount,
			},
			{
				name:   "negative amount",
				mutate: func(in *CreateTransactionInput) { in.Amount = -5 },
				want:   domainerror.ErrNonPositiveAmount,
			},
			{
				name:   "missing category",
				mutate: func(in *CreateTransactionInput) { in.Category = "" },
				want:   domainerror.ErrMissingCategory,
			},
			{
				name: "category from another type",
				mutate: func(in *CreateTransactionInput) {
					in.Category = "Consulting revenue"
				},
				want: domainerror.ErrCategoryTypeMismatch,
			},
			{
				name:   "unknown object name",
				mutate: func(in *CreateTransactionInput) { in.ObjectName = "Nobody GmbH" },
				want:   domainerror.ErrUnknownObjectName,
			},
			{
				name: "object name from the wrong list",
				mutate: func(in *CreateTransactionInput) {
					in.ObjectType = entity.ObjectTypeEmployee
					in.ObjectName = "ACME Ltd"
				},
				want: domainerror.ErrUnknownObjectName,
			},
			{
				name: "direct without business unit",
				mutate: func(in *CreateTransactionInput) {
					in.BusinessUnit = ""
				},
				want: domainerror.ErrMissingBusinessUnit,
			},
			{
				name: "indirect without rule",
				mutate: func(in *CreateTransactionInput) {
					in.CostAllocation = entity.CostAllocationIndirect
					in.AllocationRule = ""
				},
				want: domainerror.ErrMissingAllocationRule,
			},
			{
				name: "indirect with unknown rule",
				mutate: func(in *CreateTransactionInput) {
					in.CostAllocation = entity.CostAllocationIndirect
					in.AllocationRule = "no-such-rule"
				},
				want: domainerror.ErrUnknownAllocationRule,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				env := newTestEnv(t)
				input := env.validExpense()
				tt.mutate(&input)

				_, err := env.create.Execute(ctx, input)
				if !errors.Is(err, tt.want) {
					t.Errorf("Execute() error = %v, want %v", err, tt.want)
				}

				stored, _ := env.store.List(ctx)
				if len(stored) != 0 {
					t.Errorf("store holds %d transactions after a validation failure, want 0", len(stored))
				}
			})
		}
	})
}

func TestSubmitTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("moves a draft to pending and freezes the code", func(t *testing.T) {
		env := newTestEnv(t)
		created, err := env.create.Execute(ctx, env.validExpense())
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		out, err := env.submit.Execute(ctx, SubmitTransactionInput{
			UserID:        env.staff.ID,
			TransactionID: created.Transaction.ID,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if out.Transaction.ApprovalStatus != valueobject.ApprovalStatusPending {
			t.Errorf("status = %q, want pending", out.Transaction.ApprovalStatus)
		}
		if out.Transaction.SubmittedAt == nil {
			t.Error("submission time not set")
		}
		if len(env.emails.requested) != 2 {
			t.Errorf("queued %d approval request emails, want 2", len(env.emails.requested))
		}
	})

	t.Run("only the creator can submit", func(t *testing.T) {
		env := newTestEnv(t)
		created, _ := env.create.Execute(ctx, env.validExpense())

		_, err := env.submit.Execute(ctx, SubmitTransactionInput{
			UserID:        env.approver.ID,
			TransactionID: created.Transaction.ID,
		})
		if !errors.Is(err, domainerror.ErrNotTransactionOwner) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrNotTransactionOwner)
		}
	})

	t.Run("pending cannot be submitted again", func(t *testing.T) {
		env := newTestEnv(t)
		input := env.validExpense()
		input.SubmitNow = true
		created, _ := env.create.Execute(ctx, input)

		_, err := env.submit.Execute(ctx, SubmitTransactionInput{
			UserID:        env.staff.ID,
			TransactionID: created.Transaction.ID,
		})
		if !errors.Is(err, domainerror.ErrIllegalTransition) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrIllegalTransition)
		}
	})
}

func TestApproveTransaction(t *testing.T) {
	ctx := context.Background()

	pendingTransaction := func(t *testing.T, env *testEnv) uuid.UUID {
		t.Helper()
		input := env.validExpense()
		input.SubmitNow = true
		created, err := env.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return created.Transaction.ID
	}

	t.Run("approver approves a pending transaction", func(t *testing.T) {
		env := newTestEnv(t)
		id := pendingTransaction(t, env)

		out, err := env.approve.Execute(ctx, ApproveTransactionInput{
			ApproverID:    env.approver.ID,
			TransactionID: id,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Transaction.ApprovalStatus != valueobject.ApprovalStatusApproved {
			t.Errorf("status = %q, want approved", out.Transaction.ApprovalStatus)
		}
		if len(env.emails.results) != 1 || !env.emails.results[0].Approved {
			t.Errorf("results = %+v, want one approved notice", env.emails.results)
		}
	})

	t.Run("staff cannot approve", func(t *testing.T) {
		env := newTestEnv(t)
		id := pendingTransaction(t, env)

		_, err := env.approve.Execute(ctx, ApproveTransactionInput{
			ApproverID:    env.staff.ID,
			TransactionID: id,
		})
		if !errors.Is(err, domainerror.ErrInsufficientRole) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrInsufficientRole)
		}
	})

	t.Run("draft cannot be approved", func(t *testing.T) {
		env := newTestEnv(t)
		created, _ := env.create.Execute(ctx, env.validExpense())

		_, err := env.approve.Execute(ctx, ApproveTransactionInput{
			ApproverID:    env.approver.ID,
			TransactionID: created.Transaction.ID,
		})
		if !errors.Is(err, domainerror.ErrIllegalTransition) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrIllegalTransition)
		}
	})

	t.Run("approved is terminal", func(t *testing.T) {
		env := newTestEnv(t)
		id := pendingTransaction(t, env)
		if _, err := env.approve.Execute(ctx, ApproveTransactionInput{ApproverID: env.approver.ID, TransactionID: id}); err != nil {
			t.Fatalf("approve: %v", err)
		}

		_, err := env.cancel.Execute(ctx, CancelTransactionInput{UserID: env.staff.ID, TransactionID: id})
		if !errors.Is(err, domainerror.ErrIllegalTransition) {
			t.Errorf("cancel after approve error = %v, want %v", err, domainerror.ErrIllegalTransition)
		}
	})
}

func TestRejectTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("rejection requires a reason", func(t *testing.T) {
		env := newTestEnv(t)
		input := env.validExpense()
		input.SubmitNow = true
		created, _ := env.create.Execute(ctx, input)

		_, err := env.reject.Execute(ctx, RejectTransactionInput{
			ApproverID:    env.approver.ID,
			TransactionID: created.Transaction.ID,
			Reason:        "   ",
		})
		if !errors.Is(err, domainerror.ErrMissingRejectionReason) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrMissingRejectionReason)
		}
	})

	t.Run("rejected transaction can be fixed and resubmitted", func(t *testing.T) {
		env := newTestEnv(t)
		input := env.validExpense()
		input.SubmitNow = true
		created, _ := env.create.Execute(ctx, input)
		id := created.Transaction.ID

		rejected, err := env.reject.Execute(ctx, RejectTransactionInput{
			ApproverID:    env.approver.ID,
			TransactionID: id,
			Reason:        "wrong business unit",
		})
		if err != nil {
			t.Fatalf("reject: %v", err)
		}
		if rejected.Transaction.RejectionReason != "wrong business unit" {
			t.Errorf("reason = %q, want the stored reason", rejected.Transaction.RejectionReason)
		}
		if len(env.emails.results) != 1 || env.emails.results[0].Approved {
			t.Errorf("results = %+v, want one rejection notice", env.emails.results)
		}

		// The creator fixes the record while it stays rejected.
		edit := UpdateTransactionInput{
			UserID:         env.staff.ID,
			TransactionID:  id,
			Date:           input.Date,
			Type:           input.Type,
			Category:       input.Category,
			ObjectType:     input.ObjectType,
			ObjectName:     input.ObjectName,
			BusinessUnit:   "BU-South",
			Amount:         input.Amount,
			CostAllocation: input.CostAllocation,
			PaymentStatus:  entity.PaymentStatusPaid,
			Description:    input.Description,
		}
		updated, err := env.update.Execute(ctx, edit)
		if err != nil {
			t.Fatalf("update after rejection: %v", err)
		}
		if updated.Transaction.ApprovalStatus != valueobject.ApprovalStatusRejected {
			t.Errorf("status after save = %q, want rejected", updated.Transaction.ApprovalStatus)
		}
		if updated.Transaction.Code != created.Transaction.Code {
			t.Errorf("code changed on edit after submission: %q vs %q", updated.Transaction.Code, created.Transaction.Code)
		}

		resubmitted, err := env.submit.Execute(ctx, SubmitTransactionInput{UserID: env.staff.ID, TransactionID: id})
		if err != nil {
			t.Fatalf("resubmit: %v", err)
		}
		if resubmitted.Transaction.ApprovalStatus != valueobject.ApprovalStatusPending {
			t.Errorf("status = %q, want pending", resubmitted.Transaction.ApprovalStatus)
		}
		if resubmitted.Transaction.RejectionReason != "" {
			t.Errorf("rejection reason = %q, want cleared on resubmit", resubmitted.Transaction.RejectionReason)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("draft code follows type and period changes", func(t *testing.T) {
		env := newTestEnv(t)
		created, _ := env.create.Execute(ctx, env.validExpense())

		input := env.validExpense()
		edit := UpdateTransactionInput{
			UserID:         env.staff.ID,
			TransactionID:  created.Transaction.ID,
			Date:           date(2025, time.February, 5),
			Type:           input.Type,
			Category:       input.Category,
			ObjectType:     input.ObjectType,
			ObjectName:     input.ObjectName,
			BusinessUnit:   input.BusinessUnit,
			Amount:         input.Amount,
			CostAllocation: input.CostAllocation,
			PaymentStatus:  entity.PaymentStatusPaid,
		}
		out, err := env.update.Execute(ctx, edit)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Transaction.Code != "C0225_01" {
			t.Errorf("code = %q, want C0225_01 after moving to February", out.Transaction.Code)
		}
	})

	t.Run("type cannot change once the code is frozen", func(t *testing.T) {
		env := newTestEnv(t)
		input := env.validExpense()
		input.SubmitNow = true
		created, _ := env.create.Execute(ctx, input)
		if _, err := env.reject.Execute(ctx, RejectTransactionInput{
			ApproverID:    env.approver.ID,
			TransactionID: created.Transaction.ID,
			Reason:        "wrong type",
		}); err != nil {
			t.Fatalf("reject: %v", err)
		}

		edit := UpdateTransactionInput{
			UserID:         env.staff.ID,
			TransactionID:  created.Transaction.ID,
			Date:           input.Date,
			Type:           entity.TransactionTypeIncome,
			Category:       "Consulting revenue",
			ObjectType:     input.ObjectType,
			ObjectName:     input.ObjectName,
			BusinessUnit:   input.BusinessUnit,
			Amount:         input.Amount,
			CostAllocation: input.CostAllocation,
			PaymentStatus:  entity.PaymentStatusPaid,
		}
		_, err := env.update.Execute(ctx, edit)
		if !errors.Is(err, domainerror.ErrTypeChangeAfterSubmit) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrTypeChangeAfterSubmit)
		}
	})

	t.Run("pending is not editable", func(t *testing.T) {
		env := newTestEnv(t)
		input := env.validExpense()
		input.SubmitNow = true
		created, _ := env.create.Execute(ctx, input)

		edit := UpdateTransactionInput{
			UserID:         env.staff.ID,
			TransactionID:  created.Transaction.ID,
			Date:           input.Date,
			Type:           input.Type,
			Category:       input.Category,
			ObjectType:     input.ObjectType,
			ObjectName:     input.ObjectName,
			BusinessUnit:   input.BusinessUnit,
			Amount:         2_000_000,
			CostAllocation: input.CostAllocation,
			PaymentStatus:  entity.PaymentStatusPaid,
		}
		_, err := env.update.Execute(ctx, edit)
		if !errors.Is(err, domainerror.ErrTransactionImmutable) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrTransactionImmutable)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("draft can be deleted by its creator", func(t *testing.T) {
		env := newTestEnv(t)
		created, _ := env.create.Execute(ctx, env.validExpense())

		if err := env.delete.Execute(ctx, DeleteTransactionInput{
			UserID:        env.staff.ID,
			TransactionID: created.Transaction.ID,
		}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		stored, _ := env.store.List(ctx)
		if len(stored) != 0 {
			t.Errorf("store holds %d transactions, want 0", len(stored))
		}
	})

	t.Run("approved cannot be deleted", func(t *testing.T) {
		env := newTestEnv(t)
		input := env.validExpense()
		input.SubmitNow = true
		created, _ := env.create.Execute(ctx, input)
		if _, err := env.approve.Execute(ctx, ApproveTransactionInput{
			ApproverID:    env.approver.ID,
			TransactionID: created.Transaction.ID,
		}); err != nil {
			t.Fatalf("approve: %v", err)
		}

		err := env.delete.Execute(ctx, DeleteTransactionInput{
			UserID:        env.staff.ID,
			TransactionID: created.Transaction.ID,
		})
		if !errors.Is(err, domainerror.ErrTransactionImmutable) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrTransactionImmutable)
		}
	})

	t.Run("cancelled is kept for audit", func(t *testing.T) {
		env := newTestEnv(t)
		created, _ := env.create.Execute(ctx, env.validExpense())
		if _, err := env.cancel.Execute(ctx, CancelTransactionInput{
			UserID:        env.staff.ID,
			TransactionID: created.Transaction.ID,
		}); err != nil {
			t.Fatalf("cancel: %v", err)
		}

		err := env.delete.Execute(ctx, DeleteTransactionInput{
			UserID:        env.staff.ID,
			TransactionID: created.Transaction.ID,
		})
		if !errors.Is(err, domainerror.ErrTransactionImmutable) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrTransactionImmutable)
		}
	})

	t.Run("admin may delete another user's draft", func(t *testing.T) {
		env := newTestEnv(t)
		created, _ := env.create.Execute(ctx, env.validExpense())

		if err := env.delete.Execute(ctx, DeleteTransactionInput{
			UserID:        env.admin.ID,
			TransactionID: created.Transaction.ID,
		}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	})

	t.Run("another staff user may not delete", func(t *testing.T) {
		env := newTestEnv(t)
		created, _ := env.create.Execute(ctx, env.validExpense())

		other := entity.NewUser("other@ledger.test", "Other", "hash")
		env.userRepo.users[other.ID] = other

		err := env.delete.Execute(ctx, DeleteTransactionInput{
			UserID:        other.ID,
			TransactionID: created.Transaction.ID,
		})
		if !errors.Is(err, domainerror.ErrNotTransactionOwner) {
			t.Errorf("Execute() error = %v, want %v", err, domainerror.ErrNotTransactionOwner)
		}
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	list := NewListTransactionsUseCase(env.snapshot)

	for i := 0; i < 5; i++ {
		input := env.validExpense()
		input.SubmitNow = true
		created, err := env.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if i < 2 {
			if _, err := env.approve.Execute(ctx, ApproveTransactionInput{
				ApproverID:    env.approver.ID,
				TransactionID: created.Transaction.ID,
			}); err != nil {
				t.Fatalf("approve %d: %v", i, err)
			}
		}
	}

	out, err := list.Execute(ctx, ListTransactionsInput{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out.Total != 5 {
		t.Errorf("total = %d, want 5", out.Total)
	}
	if out.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", out.TotalPages)
	}
	if len(out.Transactions) != 2 {
		t.Errorf("page holds %d items, want 2", len(out.Transactions))
	}
	// KPI covers the whole filtered set, not just the page: two approved
	// expenses of 1.5M each.
	if out.KPI.TotalExpense != 3_000_000 {
		t.Errorf("TotalExpense = %d, want 3000000", out.KPI.TotalExpense)
	}
	if out.KPI.Balance != -3_000_000 {
		t.Errorf("Balance = %d, want -3000000", out.KPI.Balance)
	}

	filtered, err := list.Execute(ctx, ListTransactionsInput{
		ApprovalStatus: valueobject.ApprovalStatusApproved,
		Page:           1,
		PageSize:       10,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if filtered.Total != 2 {
		t.Errorf("approved total = %d, want 2", filtered.Total)
	}
}
