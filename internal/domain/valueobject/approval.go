// Package valueobject defines immutable domain value types.
package valueobject

// ApprovalStatus is the workflow stage of a transaction.
type ApprovalStatus string

const (
	ApprovalStatusDraft     ApprovalStatus = "draft"
	ApprovalStatusPending   ApprovalStatus = "pending"
	ApprovalStatusApproved  ApprovalStatus = "approved"
	ApprovalStatusRejected  ApprovalStatus = "rejected"
	ApprovalStatusCancelled ApprovalStatus = "cancelled"
)

// ApprovalAction is a workflow action requested on a transaction.
type ApprovalAction string

const (
	ActionSave    ApprovalAction = "save"
	ActionSubmit  ApprovalAction = "submit"
	ActionApprove ApprovalAction = "approve"
	ActionReject  ApprovalAction = "reject"
	ActionCancel  ApprovalAction = "cancel"
)

// transitions maps (current status, action) to the resulting status.
// Guards beyond pure status legality (field validation, non-empty rejection
// reason, actor role) are enforced by the use cases before the transition is
// applied.
var transitions = map[ApprovalStatus]map[ApprovalAction]ApprovalStatus{
	ApprovalStatusDraft: {
		ActionSave:   ApprovalStatusDraft,
		ActionSubmit: ApprovalStatusPending,
		ActionCancel: ApprovalStatusCancelled,
	},
	ApprovalStatusPending: {
		ActionApprove: ApprovalStatusApproved,
		ActionReject:  ApprovalStatusRejected,
		ActionCancel:  ApprovalStatusCancelled,
	},
	ApprovalStatusRejected: {
		ActionSave:   ApprovalStatusRejected,
		ActionSubmit: ApprovalStatusPending,
		ActionCancel: ApprovalStatusCancelled,
	},
}

// IsValid reports whether s is a known approval status.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusDraft, ApprovalStatusPending, ApprovalStatusApproved,
		ApprovalStatusRejected, ApprovalStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether s permits no further workflow actions.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusCancelled
}

// NextStatus returns the status reached by applying action to s.
// The second return value is false when the transition is not legal.
func NextStatus(from ApprovalStatus, action ApprovalAction) (ApprovalStatus, bool) {
	actions, ok := transitions[from]
	if !ok {
		return from, false
	}
	next, ok := actions[action]
	return next, ok
}

// CanEdit reports whether the submitting user may modify transaction fields in
// status s. Pending transactions are approver-only mutable (status and
// rejection reason), so field edits are limited to draft and rejected.
func (s ApprovalStatus) CanEdit() bool {
	return s == ApprovalStatusDraft || s == ApprovalStatusRejected
}

// CanDelete reports whether a transaction in status s may be removed.
// Approved records are frozen and cancelled records are kept for audit.
func (s ApprovalStatus) CanDelete() bool {
	return s == ApprovalStatusDraft || s == ApprovalStatusPending || s == ApprovalStatusRejected
}
