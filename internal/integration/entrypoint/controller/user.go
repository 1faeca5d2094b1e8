// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/usecase/user"
	"github.com/ledger-console/backend/internal/domain/entity"
	"github.com/ledger-console/backend/internal/integration/entrypoint/dto"
)

// UserController handles user administration endpoints. The router restricts
// all of them to admins.
type UserController struct {
	listUseCase       *user.ListUsersUseCase
	changeRoleUseCase *user.ChangeRoleUseCase
	setStatusUseCase  *user.SetStatusUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	listUseCase *user.ListUsersUseCase,
	changeRoleUseCase *user.ChangeRoleUseCase,
	setStatusUseCase *user.SetStatusUseCase,
) *UserController {
	return &UserController{
		listUseCase:       listUseCase,
		changeRoleUseCase: changeRoleUseCase,
		setStatusUseCase:  setStatusUseCase,
	}
}

// List handles GET /users requests.
func (c *UserController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}

// ChangeRole handles PUT /users/:id/role requests.
func (c *UserController) ChangeRole(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	var req dto.ChangeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.changeRoleUseCase.Execute(ctx.Request.Context(), user.ChangeRoleInput{
		UserID: userID,
		Role:   entity.UserRole(req.Role),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserOutputResponse(output.User))
}

// SetStatus handles PUT /users/:id/status requests. Deactivation revokes the
// user's refresh tokens; their transactions stay in the ledger.
func (c *UserController) SetStatus(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	var req dto.SetUserStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.setStatusUseCase.Execute(ctx.Request.Context(), user.SetStatusInput{
		UserID: userID,
		Status: entity.UserStatus(req.Status),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserOutputResponse(output.User))
}
