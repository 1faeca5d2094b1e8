// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessUnitStatus represents whether a business unit is in operation.
type BusinessUnitStatus string

const (
	BusinessUnitStatusActive   BusinessUnitStatus = "active"
	BusinessUnitStatusInactive BusinessUnitStatus = "inactive"
)

// BusinessUnit is a named cost center. Transactions and allocation rules
// reference business units by name; the unit itself is read-mostly reference
// data maintained by administrators.
type BusinessUnit struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Description string
	Director    string
	Status      BusinessUnitStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBusinessUnit creates a new active BusinessUnit entity.
func NewBusinessUnit(code, name, description, director string) *BusinessUnit {
	now := time.Now().UTC()

	return &BusinessUnit{
		ID:          uuid.New(),
		Code:        code,
		Name:        name,
		Description: description,
		Director:    director,
		Status:      BusinessUnitStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
