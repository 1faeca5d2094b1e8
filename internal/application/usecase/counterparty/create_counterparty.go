// Package counterparty contains counterparty reference-data use cases.
package counterparty

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// CreateCounterpartyInput represents the input for counterparty creation.
type CreateCounterpartyInput struct {
	Name string
	Type entity.ObjectType
}

// CreateCounterpartyOutput represents the output of counterparty creation.
type CreateCounterpartyOutput struct {
	Counterparty *entity.Counterparty
}

// CreateCounterpartyUseCase handles counterparty creation logic.
type CreateCounterpartyUseCase struct {
	counterpartyRepo adapter.CounterpartyRepository
}

// NewCreateCounterpartyUseCase creates a new CreateCounterpartyUseCase instance.
func NewCreateCounterpartyUseCase(counterpartyRepo adapter.CounterpartyRepository) *CreateCounterpartyUseCase {
	return &CreateCounterpartyUseCase{
		counterpartyRepo: counterpartyRepo,
	}
}

// Execute performs the counterparty creation.
func (uc *CreateCounterpartyUseCase) Execute(ctx context.Context, input CreateCounterpartyInput) (*CreateCounterpartyOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeMissingCounterpartyFields,
			"counterparty name is required",
			nil,
		)
	}

	if input.Type != entity.ObjectTypePartner && input.Type != entity.ObjectTypeEmployee {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeMissingCounterpartyFields,
			"counterparty type must be 'partner' or 'employee'",
			nil,
		)
	}

	exists, err := uc.counterpartyRepo.ExistsByNameAndType(ctx, name, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to check counterparty name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeCounterpartyNameExists,
			"a counterparty with this name already exists in this list",
			domainerror.ErrCounterpartyNameExists,
		)
	}

	counterparty := entity.NewCounterparty(name, input.Type)

	if err := uc.counterpartyRepo.Create(ctx, counterparty); err != nil {
		return nil, fmt.Errorf("failed to create counterparty: %w", err)
	}

	return &CreateCounterpartyOutput{
		Counterparty: counterparty,
	}, nil
}
