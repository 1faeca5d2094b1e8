// Package error defines domain-specific errors for the Ledger Console application.
package error

import "errors"

// Allocation domain errors.
var (
	// ErrUnknownAllocationRule is returned when the rule name is not in the
	// allocation rule table. The engine never silently falls back to a default.
	ErrUnknownAllocationRule = errors.New("unknown allocation rule")

	// ErrInvalidAllocationAmount is returned when the amount to allocate is not positive.
	ErrInvalidAllocationAmount = errors.New("allocation amount must be greater than zero")
)

// AllocationErrorCode defines error codes for allocation errors.
// Format: ALLOC-XXYYYY where XX is category and YYYY is specific error.
type AllocationErrorCode string

const (
	ErrCodeUnknownAllocationRule   AllocationErrorCode = "ALLOC-010001"
	ErrCodeInvalidAllocationAmount AllocationErrorCode = "ALLOC-010002"
)

// AllocationError represents an allocation error with code and message.
type AllocationError struct {
	Code    AllocationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AllocationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AllocationError) Unwrap() error {
	return e.Err
}

// NewAllocationError creates a new AllocationError with the given code and message.
func NewAllocationError(code AllocationErrorCode, message string, err error) *AllocationError {
	return &AllocationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
