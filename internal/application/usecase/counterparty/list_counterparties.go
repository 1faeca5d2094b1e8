// Package counterparty contains counterparty reference-data use cases.
package counterparty

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
)

// ListCounterpartiesInput represents the input for listing counterparties.
type ListCounterpartiesInput struct {
	Type entity.ObjectType
}

// CounterpartyOutput represents a single counterparty in the output.
type CounterpartyOutput struct {
	ID        uuid.UUID
	Name      string
	Type      entity.ObjectType
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListCounterpartiesOutput represents the output of listing counterparties.
type ListCounterpartiesOutput struct {
	Counterparties []*CounterpartyOutput
}

// ListCounterpartiesUseCase handles listing the counterparty list for one
// object type, feeding the transaction form's object name picker.
type ListCounterpartiesUseCase struct {
	counterpartyRepo adapter.CounterpartyRepository
}

// NewListCounterpartiesUseCase creates a new ListCounterpartiesUseCase instance.
func NewListCounterpartiesUseCase(counterpartyRepo adapter.CounterpartyRepository) *ListCounterpartiesUseCase {
	return &ListCounterpartiesUseCase{
		counterpartyRepo: counterpartyRepo,
	}
}

// Execute returns the active counterparties of the requested type.
func (uc *ListCounterpartiesUseCase) Execute(ctx context.Context, input ListCounterpartiesInput) (*ListCounterpartiesOutput, error) {
	counterparties, err := uc.counterpartyRepo.FindByType(ctx, input.Type)
	if err != nil {
		return nil, err
	}

	output := &ListCounterpartiesOutput{
		Counterparties: make([]*CounterpartyOutput, len(counterparties)),
	}
	for i, c := range counterparties {
		output.Counterparties[i] = &CounterpartyOutput{
			ID:        c.ID,
			Name:      c.Name,
			Type:      c.Type,
			IsActive:  c.IsActive,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}

	return output, nil
}
