// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledger-console/backend/internal/application/usecase/businessunit"
	"github.com/ledger-console/backend/internal/domain/entity"
)

// CreateBusinessUnitRequest represents the request body for business unit creation.
type CreateBusinessUnitRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=20"`
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
	Director    string `json:"director,omitempty"`
}

// UpdateBusinessUnitRequest represents the request body for business unit update.
// The code is fixed at creation.
type UpdateBusinessUnitRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
	Director    string `json:"director,omitempty"`
	Status      string `json:"status" binding:"required,oneof=active inactive"`
}

// BusinessUnitResponse represents a single business unit in API responses.
type BusinessUnitResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Director    string    `json:"director,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BusinessUnitListResponse represents the response for listing business units.
type BusinessUnitListResponse struct {
	BusinessUnits []BusinessUnitResponse `json:"business_units"`
}

// ToBusinessUnitResponse converts a domain BusinessUnit entity to its DTO.
func ToBusinessUnitResponse(unit *entity.BusinessUnit) BusinessUnitResponse {
	return BusinessUnitResponse{
		ID:          unit.ID.String(),
		Code:        unit.Code,
		Name:        unit.Name,
		Description: unit.Description,
		Director:    unit.Director,
		Status:      string(unit.Status),
		CreatedAt:   unit.CreatedAt,
		UpdatedAt:   unit.UpdatedAt,
	}
}

// ToBusinessUnitListResponse converts a list of business unit outputs to the list DTO.
func ToBusinessUnitListResponse(outputs []*businessunit.BusinessUnitOutput) BusinessUnitListResponse {
	units := make([]BusinessUnitResponse, len(outputs))
	for i, output := range outputs {
		units[i] = BusinessUnitResponse{
			ID:          output.ID.String(),
			Code:        output.Code,
			Name:        output.Name,
			Description: output.Description,
			Director:    output.Director,
			Status:      string(output.Status),
			CreatedAt:   output.CreatedAt,
			UpdatedAt:   output.UpdatedAt,
		}
	}
	return BusinessUnitListResponse{
		BusinessUnits: units,
	}
}
