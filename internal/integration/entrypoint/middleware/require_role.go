// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/integration/entrypoint/dto"
)

// RequireRole returns a Gin middleware handler that only lets through users
// whose token carries one of the given roles. It must run after Authenticate.
func RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	allowed := make(map[entity.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not authenticated",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Insufficient role for this operation",
				Code:  string(domainerror.ErrCodeInsufficientRole),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
