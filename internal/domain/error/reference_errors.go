// Package error defines domain-specific errors for the Ledger Console application.
package error

import "errors"

// Reference-data domain errors (categories, business units, counterparties).
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a category with the same name and type exists.
	ErrCategoryNameExists = errors.New("category name already exists for this type")

	// ErrBusinessUnitNotFound is returned when a business unit is not found.
	ErrBusinessUnitNotFound = errors.New("business unit not found")

	// ErrBusinessUnitCodeExists is returned when a business unit code is already taken.
	ErrBusinessUnitCodeExists = errors.New("business unit code already exists")

	// ErrCounterpartyNotFound is returned when a counterparty is not found.
	ErrCounterpartyNotFound = errors.New("counterparty not found")

	// ErrCounterpartyNameExists is returned when a counterparty with the same name
	// and type already exists.
	ErrCounterpartyNameExists = errors.New("counterparty name already exists for this type")
)

// ReferenceErrorCode defines error codes for reference-data errors.
// Format: REF-XXYYYY where XX is entity and YYYY is specific error.
type ReferenceErrorCode string

const (
	// Category errors (01XXXX)
	ErrCodeCategoryNotFound      ReferenceErrorCode = "REF-010001"
	ErrCodeCategoryNameExists    ReferenceErrorCode = "REF-010002"
	ErrCodeMissingCategoryFields ReferenceErrorCode = "REF-010003"

	// Business unit errors (02XXXX)
	ErrCodeBusinessUnitNotFound   ReferenceErrorCode = "REF-020001"
	ErrCodeBusinessUnitCodeExists ReferenceErrorCode = "REF-020002"
	ErrCodeMissingBusinessUnitFields ReferenceErrorCode = "REF-020003"

	// Counterparty errors (03XXXX)
	ErrCodeCounterpartyNotFound   ReferenceErrorCode = "REF-030001"
	ErrCodeCounterpartyNameExists ReferenceErrorCode = "REF-030002"
	ErrCodeMissingCounterpartyFields ReferenceErrorCode = "REF-030003"
)

// ReferenceError represents a reference-data error with code and message.
type ReferenceError struct {
	Code    ReferenceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// NewReferenceError creates a new ReferenceError with the given code and message.
func NewReferenceError(code ReferenceErrorCode, message string, err error) *ReferenceError {
	return &ReferenceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
