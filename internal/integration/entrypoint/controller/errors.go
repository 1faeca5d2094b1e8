// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/integration/entrypoint/dto"
)

// respondDomainError translates domain errors into HTTP responses. Every
// coded error family carries its own machine-readable code so the frontend
// can branch on it.
func respondDomainError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var storeErr *domainerror.StoreError
	if errors.As(err, &storeErr) {
		ctx.JSON(statusForStoreError(storeErr.Code), dto.ErrorResponse{
			Error: storeErr.Message,
			Code:  string(storeErr.Code),
		})
		return
	}

	var allocErr *domainerror.AllocationError
	if errors.As(err, &allocErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: allocErr.Message,
			Code:  string(allocErr.Code),
		})
		return
	}

	var refErr *domainerror.ReferenceError
	if errors.As(err, &refErr) {
		ctx.JSON(statusForReferenceError(refErr.Code), dto.ErrorResponse{
			Error: refErr.Message,
			Code:  string(refErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotTransactionOwner:
		return http.StatusForbidden
	case domainerror.ErrCodeIllegalTransition,
		domainerror.ErrCodeTransactionImmutable,
		domainerror.ErrCodeTypeChangeAfterSubmit:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeNonPositiveAmount,
		domainerror.ErrCodeMissingCategory,
		domainerror.ErrCodeMissingObjectName,
		domainerror.ErrCodeMissingBusinessUnit,
		domainerror.ErrCodeMissingAllocationRule,
		domainerror.ErrCodeCategoryTypeMismatch,
		domainerror.ErrCodeUnknownObjectName,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeMissingRejectionReason:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForStoreError(code domainerror.StoreErrorCode) int {
	if code == domainerror.ErrCodeStoreConflict {
		return http.StatusConflict
	}
	return http.StatusBadGateway
}

func statusForReferenceError(code domainerror.ReferenceErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeBusinessUnitNotFound,
		domainerror.ErrCodeCounterpartyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists,
		domainerror.ErrCodeBusinessUnitCodeExists,
		domainerror.ErrCodeCounterpartyNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeMissingCategoryFields,
		domainerror.ErrCodeMissingBusinessUnitFields,
		domainerror.ErrCodeMissingCounterpartyFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeInsufficientRole, domainerror.ErrCodeUserInactive:
		return http.StatusForbidden
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidUserRole, domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidConfirmation:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidToken, domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken, domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
