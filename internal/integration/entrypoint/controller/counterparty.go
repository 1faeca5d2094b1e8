// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/usecase/counterparty"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/integration/entrypoint/dto"
)

// CounterpartyController handles counterparty endpoints. Counterparties feed
// the transaction form's object name picker, split into the partner and
// employee lists.
type CounterpartyController struct {
	listUseCase   *counterparty.ListCounterpartiesUseCase
	createUseCase *counterparty.CreateCounterpartyUseCase
	updateUseCase *counterparty.UpdateCounterpartyUseCase
	deleteUseCase *counterparty.DeleteCounterpartyUseCase
}

// NewCounterpartyController creates a new counterparty controller instance.
func NewCounterpartyController(
	listUseCase *counterparty.ListCounterpartiesUseCase,
	createUseCase *counterparty.CreateCounterpartyUseCase,
	updateUseCase *counterparty.UpdateCounterpartyUseCase,
	deleteUseCase *counterparty.DeleteCounterpartyUseCase,
) *CounterpartyController {
	return &CounterpartyController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /counterparties requests. The type query parameter picks
// the partner or employee list.
func (c *CounterpartyController) List(ctx *gin.Context) {
	objectType := entity.ObjectType(ctx.Query("type"))
	if objectType != entity.ObjectTypePartner && objectType != entity.ObjectTypeEmployee {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter type must be partner or employee",
			Code:  string(domainerror.ErrCodeMissingCounterpartyFields),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), counterparty.ListCounterpartiesInput{
		Type: objectType,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCounterpartyListResponse(output.Counterparties))
}

// Create handles POST /counterparties requests.
func (c *CounterpartyController) Create(ctx *gin.Context) {
	var req dto.CreateCounterpartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCounterpartyFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), counterparty.CreateCounterpartyInput{
		Name: req.Name,
		Type: entity.ObjectType(req.Type),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCounterpartyResponse(output.Counterparty))
}

// Update handles PUT /counterparties/:id requests.
func (c *CounterpartyController) Update(ctx *gin.Context) {
	counterpartyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid counterparty ID format",
		})
		return
	}

	var req dto.UpdateCounterpartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCounterpartyFields),
		})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), counterparty.UpdateCounterpartyInput{
		CounterpartyID: counterpartyID,
		Name:           req.Name,
		IsActive:       isActive,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCounterpartyResponse(output.Counterparty))
}

// Delete handles DELETE /counterparties/:id requests.
func (c *CounterpartyController) Delete(ctx *gin.Context) {
	counterpartyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid counterparty ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), counterparty.DeleteCounterpartyInput{
		CounterpartyID: counterpartyID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
