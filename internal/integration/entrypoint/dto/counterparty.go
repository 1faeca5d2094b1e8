// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledger-console/backend/internal/application/usecase/counterparty"
	"github.com/ledger-console/backend/internal/domain/entity"
)

// CreateCounterpartyRequest represents the request body for counterparty creation.
type CreateCounterpartyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Type string `json:"type" binding:"required,oneof=partner employee"`
}

// UpdateCounterpartyRequest represents the request body for counterparty update.
// The list (partner or employee) never changes after creation.
type UpdateCounterpartyRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// CounterpartyResponse represents a single counterparty in API responses.
type CounterpartyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CounterpartyListResponse represents the response for listing counterparties.
type CounterpartyListResponse struct {
	Counterparties []CounterpartyResponse `json:"counterparties"`
}

// ToCounterpartyResponse converts a domain Counterparty entity to its DTO.
func ToCounterpartyResponse(cp *entity.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		ID:        cp.ID.String(),
		Name:      cp.Name,
		Type:      string(cp.Type),
		IsActive:  cp.IsActive,
		CreatedAt: cp.CreatedAt,
		UpdatedAt: cp.UpdatedAt,
	}
}

// ToCounterpartyListResponse converts a list of counterparty outputs to the list DTO.
func ToCounterpartyListResponse(outputs []*counterparty.CounterpartyOutput) CounterpartyListResponse {
	counterparties := make([]CounterpartyResponse, len(outputs))
	for i, output := range outputs {
		counterparties[i] = CounterpartyResponse{
			ID:        output.ID.String(),
			Name:      output.Name,
			Type:      string(output.Type),
			IsActive:  output.IsActive,
			CreatedAt: output.CreatedAt,
			UpdatedAt: output.UpdatedAt,
		}
	}
	return CounterpartyListResponse{
		Counterparties: counterparties,
	}
}
