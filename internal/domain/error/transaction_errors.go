// Package error defines domain-specific errors for the Ledger Console application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNonPositiveAmount is returned when the transaction amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrMissingCategory is returned when no category is set.
	ErrMissingCategory = errors.New("category is required")

	// ErrMissingObjectName is returned when no object name is set.
	ErrMissingObjectName = errors.New("object name is required")

	// ErrMissingBusinessUnit is returned when a direct transaction has no business unit.
	ErrMissingBusinessUnit = errors.New("business unit is required for direct allocation")

	// ErrMissingAllocationRule is returned when an indirect transaction has no allocation rule.
	ErrMissingAllocationRule = errors.New("allocation rule is required for indirect allocation")

	// ErrCategoryTypeMismatch is returned when the category does not belong to the
	// transaction type's allowed list.
	ErrCategoryTypeMismatch = errors.New("category does not belong to transaction type")

	// ErrUnknownObjectName is returned when the object name is not in the selected
	// counterparty list.
	ErrUnknownObjectName = errors.New("object name not found in counterparty list")

	// ErrIllegalTransition is returned when a workflow action is not legal in the
	// transaction's current approval status.
	ErrIllegalTransition = errors.New("illegal approval transition")

	// ErrTransactionImmutable is returned when editing or deleting a transaction in a
	// terminal approval status.
	ErrTransactionImmutable = errors.New("transaction is immutable in its current status")

	// ErrMissingRejectionReason is returned when a rejection carries no reason.
	ErrMissingRejectionReason = errors.New("rejection reason is required")

	// ErrTypeChangeAfterSubmit is returned when the transaction type would change after
	// the code has been frozen.
	ErrTypeChangeAfterSubmit = errors.New("transaction type cannot change after submission")

	// ErrNotTransactionOwner is returned when a user edits a transaction submitted by
	// someone else.
	ErrNotTransactionOwner = errors.New("transaction belongs to another user")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeNonPositiveAmount      TransactionErrorCode = "TXN-010002"
	ErrCodeMissingCategory        TransactionErrorCode = "TXN-010003"
	ErrCodeMissingObjectName      TransactionErrorCode = "TXN-010004"
	ErrCodeMissingBusinessUnit    TransactionErrorCode = "TXN-010005"
	ErrCodeMissingAllocationRule  TransactionErrorCode = "TXN-010006"
	ErrCodeCategoryTypeMismatch   TransactionErrorCode = "TXN-010007"
	ErrCodeUnknownObjectName      TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010009"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeNotTransactionOwner TransactionErrorCode = "TXN-020002"

	// Workflow errors (03XXXX)
	ErrCodeIllegalTransition      TransactionErrorCode = "TXN-030001"
	ErrCodeTransactionImmutable   TransactionErrorCode = "TXN-030002"
	ErrCodeMissingRejectionReason TransactionErrorCode = "TXN-030003"
	ErrCodeTypeChangeAfterSubmit  TransactionErrorCode = "TXN-030004"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
