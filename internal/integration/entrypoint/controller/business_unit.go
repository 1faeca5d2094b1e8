// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/usecase/businessunit"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/integration/entrypoint/dto"
)

// BusinessUnitController handles business unit endpoints. Units are never
// deleted; they deactivate so historical transactions keep their references.
type BusinessUnitController struct {
	listUseCase   *businessunit.ListBusinessUnitsUseCase
	createUseCase *businessunit.CreateBusinessUnitUseCase
	updateUseCase *businessunit.UpdateBusinessUnitUseCase
}

// NewBusinessUnitController creates a new business unit controller instance.
func NewBusinessUnitController(
	listUseCase *businessunit.ListBusinessUnitsUseCase,
	createUseCase *businessunit.CreateBusinessUnitUseCase,
	updateUseCase *businessunit.UpdateBusinessUnitUseCase,
) *BusinessUnitController {
	return &BusinessUnitController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /business-units requests.
func (c *BusinessUnitController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBusinessUnitListResponse(output.BusinessUnits))
}

// Create handles POST /business-units requests.
func (c *BusinessUnitController) Create(ctx *gin.Context) {
	var req dto.CreateBusinessUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBusinessUnitFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), businessunit.CreateBusinessUnitInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Director:    req.Director,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBusinessUnitResponse(output.BusinessUnit))
}

// Update handles PUT /business-units/:id requests.
func (c *BusinessUnitController) Update(ctx *gin.Context) {
	unitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid business unit ID format",
		})
		return
	}

	var req dto.UpdateBusinessUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBusinessUnitFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), businessunit.UpdateBusinessUnitInput{
		BusinessUnitID: unitID,
		Name:           req.Name,
		Description:    req.Description,
		Director:       req.Director,
		Status:         entity.BusinessUnitStatus(req.Status),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBusinessUnitResponse(output.BusinessUnit))
}
