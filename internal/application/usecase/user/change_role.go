// Package user contains user administration use cases.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// ChangeRoleInput represents the input for changing a user's role.
type ChangeRoleInput struct {
	UserID uuid.UUID
	Role   entity.UserRole
}

// ChangeRoleOutput represents the output of changing a user's role.
type ChangeRoleOutput struct {
	User *UserOutput
}

// ChangeRoleUseCase handles role assignment. The router restricts this
// operation to admins; the new role takes effect on the user's next token.
type ChangeRoleUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewChangeRoleUseCase creates a new ChangeRoleUseCase instance.
func NewChangeRoleUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the role change and revokes the user's refresh tokens so a
// stale role cannot be carried forward past the access token lifetime.
func (uc *ChangeRoleUseCase) Execute(ctx context.Context, input ChangeRoleInput) (*ChangeRoleOutput, error) {
	if !entity.IsValidRole(input.Role) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidUserRole,
			"role must be 'staff', 'approver' or 'admin'",
			domainerror.ErrInvalidUserRole,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	user.Role = input.Role
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke user tokens: %w", err)
	}

	return &ChangeRoleOutput{User: newUserOutput(user)}, nil
}
