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

// SetStatusInput represents the input for activating or deactivating a user.
type SetStatusInput struct {
	UserID uuid.UUID
	Status entity.UserStatus
}

// SetStatusOutput represents the output of a status change.
type SetStatusOutput struct {
	User *UserOutput
}

// SetStatusUseCase handles account activation and deactivation. Deactivation
// keeps the user's transactions; the account just cannot sign in anymore.
type SetStatusUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewSetStatusUseCase creates a new SetStatusUseCase instance.
func NewSetStatusUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *SetStatusUseCase {
	return &SetStatusUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the status change. Deactivation also revokes every refresh
// token so open sessions end at the access token lifetime.
func (uc *SetStatusUseCase) Execute(ctx context.Context, input SetStatusInput) (*SetStatusOutput, error) {
	if input.Status != entity.UserStatusActive && input.Status != entity.UserStatusInactive {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"status must be 'active' or 'inactive'",
			nil,
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

	user.Status = input.Status
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	if input.Status == entity.UserStatusInactive {
		if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to revoke user tokens: %w", err)
		}
	}

	return &SetStatusOutput{User: newUserOutput(user)}, nil
}
