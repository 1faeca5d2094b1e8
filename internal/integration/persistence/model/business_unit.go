// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
)

// BusinessUnitModel represents the business_units table in the database.
type BusinessUnitModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Director    string    `gorm:"type:varchar(100)"`
	Status      string    `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the BusinessUnitModel.
func (BusinessUnitModel) TableName() string {
	return "business_units"
}

// ToEntity converts a BusinessUnitModel to a domain BusinessUnit entity.
func (m *BusinessUnitModel) ToEntity() *entity.BusinessUnit {
	return &entity.BusinessUnit{
		ID:          m.ID,
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		Director:    m.Director,
		Status:      entity.BusinessUnitStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BusinessUnitFromEntity creates a BusinessUnitModel from a domain BusinessUnit entity.
func BusinessUnitFromEntity(unit *entity.BusinessUnit) *BusinessUnitModel {
	return &BusinessUnitModel{
		ID:          unit.ID,
		Code:        unit.Code,
		Name:        unit.Name,
		Description: unit.Description,
		Director:    unit.Director,
		Status:      string(unit.Status),
		CreatedAt:   unit.CreatedAt,
		UpdatedAt:   unit.UpdatedAt,
	}
}
