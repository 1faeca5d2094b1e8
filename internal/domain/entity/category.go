// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents an allowed transaction label. Each category belongs to a
// single transaction type; the form only offers categories matching the
// selected type.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      TransactionType
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new active Category entity.
func NewCategory(name string, transactionType TransactionType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      transactionType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
