// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/usecase/transaction"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/domain/valueobject"
	"github.com/ledger-console/backend/internal/integration/entrypoint/dto"
	"github.com/ledger-console/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints, including the approval
// workflow actions.
type TransactionController struct {
	listUseCase    *transaction.ListTransactionsUseCase
	getUseCase     *transaction.GetTransactionUseCase
	createUseCase  *transaction.CreateTransactionUseCase
	updateUseCase  *transaction.UpdateTransactionUseCase
	deleteUseCase  *transaction.DeleteTransactionUseCase
	submitUseCase  *transaction.SubmitTransactionUseCase
	approveUseCase *transaction.ApproveTransactionUseCase
	rejectUseCase  *transaction.RejectTransactionUseCase
	cancelUseCase  *transaction.CancelTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	submitUseCase *transaction.SubmitTransactionUseCase,
	approveUseCase *transaction.ApproveTransactionUseCase,
	rejectUseCase *transaction.RejectTransactionUseCase,
	cancelUseCase *transaction.CancelTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		submitUseCase:  submitUseCase,
		approveUseCase: approveUseCase,
		rejectUseCase:  rejectUseCase,
		cancelUseCase:  cancelUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		Search:         ctx.Query("search"),
		BusinessUnit:   ctx.Query("business_unit"),
		ApprovalStatus: valueobject.ApprovalStatus(ctx.Query("approval_status")),
		Type:           entity.TransactionType(ctx.Query("type")),
		DatePreset:     transaction.RangePreset(ctx.Query("period")),
		SortField:      transaction.SortField(ctx.Query("sort")),
		SortOrder:      transaction.SortOrder(ctx.Query("order")),
	}

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err == nil {
			input.CustomStart = &start
		}
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err == nil {
			input.CustomEnd = &end
		}
	}

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if sizeStr := ctx.Query("page_size"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil {
			input.PageSize = size
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: transactionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:         userID,
		Date:           date,
		Type:           entity.TransactionType(req.Type),
		Category:       req.Category,
		Project:        req.Project,
		ObjectType:     entity.ObjectType(req.ObjectType),
		ObjectName:     req.ObjectName,
		BusinessUnit:   req.BusinessUnit,
		Amount:         req.Amount,
		CostAllocation: entity.CostAllocation(req.CostAllocation),
		AllocationRule: req.AllocationRule,
		PaymentStatus:  entity.PaymentStatus(req.PaymentStatus),
		Description:    req.Description,
		Attachments:    dto.ToAttachmentInputs(req.Attachments),
		SubmitNow:      req.Submit,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		UserID:         userID,
		TransactionID:  transactionID,
		Date:           date,
		Type:           entity.TransactionType(req.Type),
		Category:       req.Category,
		Project:        req.Project,
		ObjectType:     entity.ObjectType(req.ObjectType),
		ObjectName:     req.ObjectName,
		BusinessUnit:   req.BusinessUnit,
		Amount:         req.Amount,
		CostAllocation: entity.CostAllocation(req.CostAllocation),
		AllocationRule: req.AllocationRule,
		PaymentStatus:  entity.PaymentStatus(req.PaymentStatus),
		Description:    req.Description,
		Attachments:    dto.ToAttachmentInputs(req.Attachments),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Submit handles POST /transactions/:id/submit requests.
func (c *TransactionController) Submit(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	output, err := c.submitUseCase.Execute(ctx.Request.Context(), transaction.SubmitTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Approve handles POST /transactions/:id/approve requests.
func (c *TransactionController) Approve(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), transaction.ApproveTransactionInput{
		ApproverID:    userID,
		TransactionID: transactionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Reject handles POST /transactions/:id/reject requests.
func (c *TransactionController) Reject(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.RejectTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Rejection reason is required",
			Code:  string(domainerror.ErrCodeMissingRejectionReason),
		})
		return
	}

	output, err := c.rejectUseCase.Execute(ctx.Request.Context(), transaction.RejectTransactionInput{
		ApproverID:    userID,
		TransactionID: transactionID,
		Reason:        req.Reason,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Cancel handles POST /transactions/:id/cancel requests.
func (c *TransactionController) Cancel(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), transaction.CancelTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

func (c *TransactionController) requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

func (c *TransactionController) parseTransactionID(ctx *gin.Context) (uuid.UUID, bool) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return uuid.Nil, false
	}
	return transactionID, true
}
