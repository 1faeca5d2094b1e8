// Package counterparty contains counterparty reference-data use cases.
package counterparty

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// DeleteCounterpartyInput represents the input for counterparty deletion.
type DeleteCounterpartyInput struct {
	CounterpartyID uuid.UUID
}

// DeleteCounterpartyOutput represents the output of counterparty deletion.
type DeleteCounterpartyOutput struct {
	Success bool
}

// DeleteCounterpartyUseCase handles counterparty deletion logic.
type DeleteCounterpartyUseCase struct {
	counterpartyRepo adapter.CounterpartyRepository
}

// NewDeleteCounterpartyUseCase creates a new DeleteCounterpartyUseCase instance.
func NewDeleteCounterpartyUseCase(counterpartyRepo adapter.CounterpartyRepository) *DeleteCounterpartyUseCase {
	return &DeleteCounterpartyUseCase{
		counterpartyRepo: counterpartyRepo,
	}
}

// Execute performs the counterparty deletion. Recorded transactions keep the
// name they were validated against at save time.
func (uc *DeleteCounterpartyUseCase) Execute(ctx context.Context, input DeleteCounterpartyInput) (*DeleteCounterpartyOutput, error) {
	if _, err := uc.counterpartyRepo.FindByID(ctx, input.CounterpartyID); err != nil {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeCounterpartyNotFound,
			"counterparty not found",
			domainerror.ErrCounterpartyNotFound,
		)
	}

	if err := uc.counterpartyRepo.Delete(ctx, input.CounterpartyID); err != nil {
		return nil, fmt.Errorf("failed to delete counterparty: %w", err)
	}

	return &DeleteCounterpartyOutput{
		Success: true,
	}, nil
}
