// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
)

// CounterpartyModel represents the counterparties table in the database.
// Names are unique within a list (partner or employee).
type CounterpartyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_counterparties_name_type"`
	Type      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_counterparties_name_type;index"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CounterpartyModel.
func (CounterpartyModel) TableName() string {
	return "counterparties"
}

// ToEntity converts a CounterpartyModel to a domain Counterparty entity.
func (m *CounterpartyModel) ToEntity() *entity.Counterparty {
	return &entity.Counterparty{
		ID:        m.ID,
		Name:      m.Name,
		Type:      entity.ObjectType(m.Type),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CounterpartyFromEntity creates a CounterpartyModel from a domain Counterparty entity.
func CounterpartyFromEntity(counterparty *entity.Counterparty) *CounterpartyModel {
	return &CounterpartyModel{
		ID:        counterparty.ID,
		Name:      counterparty.Name,
		Type:      string(counterparty.Type),
		IsActive:  counterparty.IsActive,
		CreatedAt: counterparty.CreatedAt,
		UpdatedAt: counterparty.UpdatedAt,
	}
}
