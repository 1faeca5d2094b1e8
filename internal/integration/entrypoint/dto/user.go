// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ledger-console/backend/internal/application/usecase/user"
)

// ChangeRoleRequest represents the request body for changing a user's role.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=staff approver admin"`
}

// SetUserStatusRequest represents the request body for activating or
// deactivating a user account.
type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// UserListResponse represents the response for listing users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserOutputResponse converts a user administration output to its DTO.
func ToUserOutputResponse(output *user.UserOutput) UserResponse {
	return UserResponse{
		ID:        output.ID.String(),
		Email:     output.Email,
		Name:      output.Name,
		Role:      string(output.Role),
		Status:    string(output.Status),
		CreatedAt: output.CreatedAt,
	}
}

// ToUserListResponse converts a list of user outputs to the list DTO.
func ToUserListResponse(outputs []*user.UserOutput) UserListResponse {
	users := make([]UserResponse, len(outputs))
	for i, output := range outputs {
		users[i] = ToUserOutputResponse(output)
	}
	return UserListResponse{
		Users: users,
	}
}
