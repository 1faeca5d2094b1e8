// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledger-console/backend/internal/application/usecase/category"
	"github.com/ledger-console/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Type string `json:"type" binding:"required,oneof=income expense loan"`
}

// UpdateCategoryRequest represents the request body for category update.
// The transaction type of a category never changes.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to its DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Type:      string(cat.Type),
		IsActive:  cat.IsActive,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of category outputs to the list DTO.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		categories[i] = CategoryResponse{
			ID:        output.ID.String(),
			Name:      output.Name,
			Type:      string(output.Type),
			IsActive:  output.IsActive,
			CreatedAt: output.CreatedAt,
			UpdatedAt: output.UpdatedAt,
		}
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
