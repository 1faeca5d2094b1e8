// Package businessunit contains business-unit reference-data use cases.
package businessunit

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// CreateBusinessUnitInput represents the input for business unit creation.
type CreateBusinessUnitInput struct {
	Code        string
	Name        string
	Description string
	Director    string
}

// CreateBusinessUnitOutput represents the output of business unit creation.
type CreateBusinessUnitOutput struct {
	BusinessUnit *entity.BusinessUnit
}

// CreateBusinessUnitUseCase handles business unit creation logic.
type CreateBusinessUnitUseCase struct {
	unitRepo adapter.BusinessUnitRepository
}

// NewCreateBusinessUnitUseCase creates a new CreateBusinessUnitUseCase instance.
func NewCreateBusinessUnitUseCase(unitRepo adapter.BusinessUnitRepository) *CreateBusinessUnitUseCase {
	return &CreateBusinessUnitUseCase{
		unitRepo: unitRepo,
	}
}

// Execute performs the business unit creation.
func (uc *CreateBusinessUnitUseCase) Execute(ctx context.Context, input CreateBusinessUnitInput) (*CreateBusinessUnitOutput, error) {
	code := strings.TrimSpace(input.Code)
	name := strings.TrimSpace(input.Name)
	if code == "" || name == "" {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeMissingBusinessUnitFields,
			"business unit code and name are required",
			nil,
		)
	}

	exists, err := uc.unitRepo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check business unit code: %w", err)
	}
	if exists {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeBusinessUnitCodeExists,
			"a business unit with this code already exists",
			domainerror.ErrBusinessUnitCodeExists,
		)
	}

	unit := entity.NewBusinessUnit(code, name, input.Description, input.Director)

	if err := uc.unitRepo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to create business unit: %w", err)
	}

	return &CreateBusinessUnitOutput{
		BusinessUnit: unit,
	}, nil
}
