// Package counterparty contains counterparty reference-data use cases.
package counterparty

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

// UpdateCounterpartyInput represents the input for counterparty update. The
// list (partner or employee) never changes after creation.
type UpdateCounterpartyInput struct {
	CounterpartyID uuid.UUID
	Name           string
	IsActive       bool
}

// UpdateCounterpartyOutput represents the output of counterparty update.
type UpdateCounterpartyOutput struct {
	Counterparty *entity.Counterparty
}

// UpdateCounterpartyUseCase handles counterparty update logic.
type UpdateCounterpartyUseCase struct {
	counterpartyRepo adapter.CounterpartyRepository
}

// NewUpdateCounterpartyUseCase creates a new UpdateCounterpartyUseCase instance.
func NewUpdateCounterpartyUseCase(counterpartyRepo adapter.CounterpartyRepository) *UpdateCounterpartyUseCase {
	return &UpdateCounterpartyUseCase{
		counterpartyRepo: counterpartyRepo,
	}
}

// Execute performs the counterparty update.
func (uc *UpdateCounterpartyUseCase) Execute(ctx context.Context, input UpdateCounterpartyInput) (*UpdateCounterpartyOutput, error) {
	counterparty, err := uc.counterpartyRepo.FindByID(ctx, input.CounterpartyID)
	if err != nil {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeCounterpartyNotFound,
			"counterparty not found",
			domainerror.ErrCounterpartyNotFound,
		)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeMissingCounterpartyFields,
			"counterparty name is required",
			nil,
		)
	}

	if name != counterparty.Name {
		exists, err := uc.counterpartyRepo.ExistsByNameAndType(ctx, name, counterparty.Type)
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
	}

	counterparty.Name = name
	counterparty.IsActive = input.IsActive
	counterparty.UpdatedAt = time.Now().UTC()

	if err := uc.counterpartyRepo.Update(ctx, counterparty); err != nil {
		return nil, fmt.Errorf("failed to update counterparty: %w", err)
	}

	return &UpdateCounterpartyOutput{
		Counterparty: counterparty,
	}, nil
}
