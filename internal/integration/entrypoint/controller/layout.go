// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledger-console/backend/internal/application/usecase/layout"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/integration/entrypoint/dto"
	"github.com/ledger-console/backend/internal/integration/entrypoint/middleware"
)

// LayoutController handles the per-user transaction table column layout.
type LayoutController struct {
	getUseCase   *layout.GetLayoutUseCase
	saveUseCase  *layout.SaveLayoutUseCase
	resetUseCase *layout.ResetLayoutUseCase
}

// NewLayoutController creates a new layout controller instance.
func NewLayoutController(
	getUseCase *layout.GetLayoutUseCase,
	saveUseCase *layout.SaveLayoutUseCase,
	resetUseCase *layout.ResetLayoutUseCase,
) *LayoutController {
	return &LayoutController{
		getUseCase:   getUseCase,
		saveUseCase:  saveUseCase,
		resetUseCase: resetUseCase,
	}
}

// Get handles GET /layout/columns requests.
func (c *LayoutController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLayoutResponse(output.Columns, output.Customized))
}

// Save handles PUT /layout/columns requests.
func (c *LayoutController) Save(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SaveLayoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	err := c.saveUseCase.Execute(ctx.Request.Context(), layout.SaveLayoutInput{
		UserID:  userID,
		Columns: dto.ToColumnSettings(req.Columns),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLayoutResponse(output.Columns, output.Customized))
}

// Reset handles DELETE /layout/columns requests.
func (c *LayoutController) Reset(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	if err := c.resetUseCase.Execute(ctx.Request.Context(), userID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLayoutResponse(layout.DefaultColumns, false))
}
