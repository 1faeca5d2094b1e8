// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Counterparty is a partner or employee a transaction can be recorded against.
// The transaction's object type decides which list its object name is
// validated against.
type Counterparty struct {
	ID        uuid.UUID
	Name      string
	Type      ObjectType
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCounterparty creates a new active Counterparty entity.
func NewCounterparty(name string, objectType ObjectType) *Counterparty {
	now := time.Now().UTC()

	return &Counterparty{
		ID:        uuid.New(),
		Name:      name,
		Type:      objectType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
