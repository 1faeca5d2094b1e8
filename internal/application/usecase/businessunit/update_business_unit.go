// Package businessunit contains business-unit reference-data use cases.
package businessunit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// UpdateBusinessUnitInput represents the input for business unit update. The
// code is fixed at creation; transactions and allocation rules reference units
// by name, so a rename cascades visually but the code stays the stable key.
type UpdateBusinessUnitInput struct {
	BusinessUnitID uuid.UUID
	Name           string
	Description    string
	Director       string
	Status         entity.BusinessUnitStatus
}

// UpdateBusinessUnitOutput represents the output of business unit update.
type UpdateBusinessUnitOutput struct {
	BusinessUnit *entity.BusinessUnit
}

// UpdateBusinessUnitUseCase handles business unit update logic.
type UpdateBusinessUnitUseCase struct {
	unitRepo adapter.BusinessUnitRepository
}

// NewUpdateBusinessUnitUseCase creates a new UpdateBusinessUnitUseCase instance.
func NewUpdateBusinessUnitUseCase(unitRepo adapter.BusinessUnitRepository) *UpdateBusinessUnitUseCase {
	return &UpdateBusinessUnitUseCase{
		unitRepo: unitRepo,
	}
}

// Execute performs the business unit update.
func (uc *UpdateBusinessUnitUseCase) Execute(ctx context.Context, input UpdateBusinessUnitInput) (*UpdateBusinessUnitOutput, error) {
	unit, err := uc.unitRepo.FindByID(ctx, input.BusinessUnitID)
	if err != nil {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeBusinessUnitNotFound,
			"business unit not found",
			domainerror.ErrBusinessUnitNotFound,
		)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeMissingBusinessUnitFields,
			"business unit name is required",
			nil,
		)
	}

	if input.Status != entity.BusinessUnitStatusActive && input.Status != entity.BusinessUnitStatusInactive {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeMissingBusinessUnitFields,
			"business unit status must be 'active' or 'inactive'",
			nil,
		)
	}

	unit.Name = name
	unit.Description = input.Description
	unit.Director = input.Director
	unit.Status = input.Status
	unit.UpdatedAt = time.Now().UTC()

	if err := uc.unitRepo.Update(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to update business unit: %w", err)
	}

	return &UpdateBusinessUnitOutput{
		BusinessUnit: unit,
	}, nil
}
