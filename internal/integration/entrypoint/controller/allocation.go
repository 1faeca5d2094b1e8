// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledger-console/backend/internal/application/usecase/allocation"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/integration/entrypoint/dto"
)

// AllocationController handles allocation rule endpoints.
type AllocationController struct {
	previewUseCase   *allocation.PreviewAllocationUseCase
	listRulesUseCase *allocation.ListRulesUseCase
}

// NewAllocationController creates a new allocation controller instance.
func NewAllocationController(
	previewUseCase *allocation.PreviewAllocationUseCase,
	listRulesUseCase *allocation.ListRulesUseCase,
) *AllocationController {
	return &AllocationController{
		previewUseCase:   previewUseCase,
		listRulesUseCase: listRulesUseCase,
	}
}

// ListRules handles GET /allocation-rules requests.
func (c *AllocationController) ListRules(ctx *gin.Context) {
	output := c.listRulesUseCase.Execute()
	ctx.JSON(http.StatusOK, dto.ToAllocationRuleListResponse(output))
}

// Preview handles POST /allocation-rules/preview requests. The transaction
// form uses this to show the split before the transaction is saved.
func (c *AllocationController) Preview(ctx *gin.Context) {
	var req dto.PreviewAllocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidAllocationAmount),
		})
		return
	}

	output, err := c.previewUseCase.Execute(allocation.PreviewInput{
		Amount:   req.Amount,
		RuleName: req.Rule,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPreviewAllocationResponse(output))
}
