// Package businessunit contains business-unit reference-data use cases.
package businessunit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
)

// BusinessUnitOutput represents a single business unit in the output.
type BusinessUnitOutput struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Description string
	Director    string
	Status      entity.BusinessUnitStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListBusinessUnitsOutput represents the output of listing business units.
type ListBusinessUnitsOutput struct {
	BusinessUnits []*BusinessUnitOutput
}

// ListBusinessUnitsUseCase handles listing business units.
type ListBusinessUnitsUseCase struct {
	unitRepo adapter.BusinessUnitRepository
}

// NewListBusinessUnitsUseCase creates a new ListBusinessUnitsUseCase instance.
func NewListBusinessUnitsUseCase(unitRepo adapter.BusinessUnitRepository) *ListBusinessUnitsUseCase {
	return &ListBusinessUnitsUseCase{
		unitRepo: unitRepo,
	}
}

// Execute returns all business units ordered by code.
func (uc *ListBusinessUnitsUseCase) Execute(ctx context.Context) (*ListBusinessUnitsOutput, error) {
	units, err := uc.unitRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	output := &ListBusinessUnitsOutput{
		BusinessUnits: make([]*BusinessUnitOutput, len(units)),
	}
	for i, unit := range units {
		output.BusinessUnits[i] = &BusinessUnitOutput{
			ID:          unit.ID,
			Code:        unit.Code,
			Name:        unit.Name,
			Description: unit.Description,
			Director:    unit.Director,
			Status:      unit.Status,
			CreatedAt:   unit.CreatedAt,
			UpdatedAt:   unit.UpdatedAt,
		}
	}

	return output, nil
}
