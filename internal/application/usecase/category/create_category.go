// Package category contains category reference-data use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Type entity.TransactionType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic. Categories are shared
// reference data; the router restricts this operation to admins.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeMissingCategoryFields,
			fmt.Sprintf("category name is required and must not exceed %d characters", MaxCategoryNameLength),
			nil,
		)
	}

	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeMissingCategoryFields,
			"category type must be 'income', 'expense' or 'loan'",
			nil,
		)
	}

	// Names are unique per transaction type, not globally.
	exists, err := uc.categoryRepo.ExistsByNameAndType(ctx, name, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists for this type",
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(name, input.Type)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// isValidTransactionType validates the owning transaction type.
func isValidTransactionType(t entity.TransactionType) bool {
	return t == entity.TransactionTypeIncome ||
		t == entity.TransactionTypeExpense ||
		t == entity.TransactionTypeLoan
}
