// Package error defines domain-specific errors for the Ledger Console application.
package error

import "errors"

// Data store boundary errors. Every failure from the external store crosses the
// facade as a StoreError; no raw driver error escapes to callers.
var (
	// ErrStoreUnavailable is returned when the data store cannot be reached.
	ErrStoreUnavailable = errors.New("data store unavailable")

	// ErrStoreConflict is returned when the store rejects a write, typically a
	// duplicate transaction code created by a concurrent session.
	ErrStoreConflict = errors.New("data store rejected the write")
)

// StoreErrorCode defines error codes for data store errors.
// Format: STORE-XXYYYY where XX is operation and YYYY is specific error.
type StoreErrorCode string

const (
	ErrCodeStoreList   StoreErrorCode = "STORE-010001"
	ErrCodeStoreCreate StoreErrorCode = "STORE-020001"
	ErrCodeStoreUpdate StoreErrorCode = "STORE-030001"
	ErrCodeStoreDelete StoreErrorCode = "STORE-040001"
	ErrCodeStoreConflict StoreErrorCode = "STORE-020002"
)

// StoreError represents a data store failure with code and message.
type StoreError struct {
	Code    StoreErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given code and message.
func NewStoreError(code StoreErrorCode, message string, err error) *StoreError {
	return &StoreError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
