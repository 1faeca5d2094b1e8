// Package category contains category reference-data use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. The owning
// transaction type never changes; recorded transactions reference the category
// by name and would silently change meaning.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       string
	IsActive   bool
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewReferenceError(
			domainerror.ErrCodeMissingCategoryFields,
			fmt.Sprintf("category name is required and must not exceed %d characters", MaxCategoryNameLength),
			nil,
		)
	}

	if name != category.Name {
		exists, err := uc.categoryRepo.ExistsByNameAndType(ctx, name, category.Type)
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
	}

	category.Name = name
	category.IsActive = input.IsActive
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
