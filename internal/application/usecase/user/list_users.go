// Package user contains user administration use cases.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
)

// UserOutput represents a single user in administration output. The password
// hash never leaves the use case layer.
type UserOutput struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      entity.UserRole
	Status    entity.UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Users []*UserOutput
}

// ListUsersUseCase handles the user administration list view.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute returns every user account.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersOutput, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	output := &ListUsersOutput{
		Users: make([]*UserOutput, len(users)),
	}
	for i, u := range users {
		output.Users[i] = newUserOutput(u)
	}

	return output, nil
}

func newUserOutput(u *entity.User) *UserOutput {
	return &UserOutput{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
