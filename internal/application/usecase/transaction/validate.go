// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

const defaultPageSize = 20

// validator re-checks the field rules on the application side of the store
// boundary. Validation failures never reach the data store.
type validator struct {
	categoryRepo     adapter.CategoryRepository
	counterpartyRepo adapter.CounterpartyRepository
}

func newValidator(categoryRepo adapter.CategoryRepository, counterpartyRepo adapter.CounterpartyRepository) *validator {
	return &validator{
		categoryRepo:     categoryRepo,
		counterpartyRepo: counterpartyRepo,
	}
}

// validate checks every field rule. The same rules apply to save and submit;
// the difference between the two is only the resulting approval status.
func (v *validator) validate(ctx context.Context, t *entity.Transaction) error {
	if _, ok := codePrefixes[t.Type]; !ok {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income', 'expense' or 'loan'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if t.Amount <= 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be greater than zero",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if t.Category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}

	if t.ObjectName == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingObjectName,
			"object name is required",
			domainerror.ErrMissingObjectName,
		)
	}

	switch t.CostAllocation {
	case entity.CostAllocationDirect:
		if t.BusinessUnit == "" {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeMissingBusinessUnit,
				"business unit is required for direct allocation",
				domainerror.ErrMissingBusinessUnit,
			)
		}
	case entity.CostAllocationIndirect:
		if t.AllocationRule == "" {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeMissingAllocationRule,
				"allocation rule is required for indirect allocation",
				domainerror.ErrMissingAllocationRule,
			)
		}
	default:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"cost allocation must be 'direct' or 'indirect'",
			nil,
		)
	}

	// Category must belong to the transaction type's allowed list.
	categories, err := v.categoryRepo.FindByType(ctx, t.Type)
	if err != nil {
		return domainerror.NewStoreError(
			domainerror.ErrCodeStoreList,
			"failed to load categories",
			err,
		)
	}
	if !containsCategory(categories, t.Category) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("category %q is not allowed for type %q", t.Category, t.Type),
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	// Object name must be in the counterparty list selected by object type.
	known, err := v.counterpartyRepo.ExistsByNameAndType(ctx, t.ObjectName, t.ObjectType)
	if err != nil {
		return domainerror.NewStoreError(
			domainerror.ErrCodeStoreList,
			"failed to load counterparties",
			err,
		)
	}
	if !known {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeUnknownObjectName,
			fmt.Sprintf("object name %q not found in %s list", t.ObjectName, t.ObjectType),
			domainerror.ErrUnknownObjectName,
		)
	}

	return nil
}

func containsCategory(categories []*entity.Category, name string) bool {
	for _, c := range categories {
		if c.Name == name {
			return true
		}
	}
	return false
}
