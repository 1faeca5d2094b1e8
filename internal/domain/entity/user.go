// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents what a user is allowed to do in the console.
type UserRole string

const (
	// UserRoleStaff records transactions and submits them for approval.
	UserRoleStaff UserRole = "staff"
	// UserRoleApprover approves or rejects pending transactions.
	UserRoleApprover UserRole = "approver"
	// UserRoleAdmin manages users, categories and business units, and can approve.
	UserRoleAdmin UserRole = "admin"
)

// UserStatus represents whether a user account may sign in.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents a staff account in the Ledger Console system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with the staff role and active status.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         UserRoleStaff,
		Status:       UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsValidRole reports whether r is a known user role.
func IsValidRole(r UserRole) bool {
	return r == UserRoleStaff || r == UserRoleApprover || r == UserRoleAdmin
}

// CanApprove reports whether the user may approve or reject pending transactions.
func (u *User) CanApprove() bool {
	return u.Role == UserRoleApprover || u.Role == UserRoleAdmin
}

// IsActive reports whether the account may sign in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
