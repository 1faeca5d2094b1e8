// Package layout contains the per-user transaction table layout use cases.
package layout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// DefaultColumns is the transaction table's column order when a user has not
// customized it. IDs match the table's column identifiers in the console.
var DefaultColumns = []adapter.ColumnSetting{
	{ID: "code", Visible: true},
	{ID: "date", Visible: true},
	{ID: "type", Visible: true},
	{ID: "category", Visible: true},
	{ID: "object_name", Visible: true},
	{ID: "business_unit", Visible: true},
	{ID: "amount", Visible: true},
	{ID: "payment_status", Visible: true},
	{ID: "approval_status", Visible: true},
	{ID: "project", Visible: false},
	{ID: "attachments", Visible: false},
	{ID: "description", Visible: false},
}

// GetLayoutOutput represents a user's resolved column layout.
type GetLayoutOutput struct {
	Columns    []adapter.ColumnSetting
	Customized bool
}

// GetLayoutUseCase resolves the column layout for a user.
type GetLayoutUseCase struct {
	layoutStore adapter.LayoutStore
}

// NewGetLayoutUseCase creates a new GetLayoutUseCase instance.
func NewGetLayoutUseCase(layoutStore adapter.LayoutStore) *GetLayoutUseCase {
	return &GetLayoutUseCase{layoutStore: layoutStore}
}

// Execute returns the user's stored layout, or the default order when the
// user has never customized it.
func (uc *GetLayoutUseCase) Execute(ctx context.Context, userID uuid.UUID) (*GetLayoutOutput, error) {
	columns, err := uc.layoutStore.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load column layout: %w", err)
	}

	if columns == nil {
		defaults := make([]adapter.ColumnSetting, len(DefaultColumns))
		copy(defaults, DefaultColumns)
		return &GetLayoutOutput{Columns: defaults, Customized: false}, nil
	}

	return &GetLayoutOutput{Columns: columns, Customized: true}, nil
}

// SaveLayoutInput represents the input for saving a column layout.
type SaveLayoutInput struct {
	UserID  uuid.UUID
	Columns []adapter.ColumnSetting
}

// SaveLayoutUseCase persists a user's column layout.
type SaveLayoutUseCase struct {
	layoutStore adapter.LayoutStore
}

// NewSaveLayoutUseCase creates a new SaveLayoutUseCase instance.
func NewSaveLayoutUseCase(layoutStore adapter.LayoutStore) *SaveLayoutUseCase {
	return &SaveLayoutUseCase{layoutStore: layoutStore}
}

// Execute validates the layout against the known column set and stores it.
func (uc *SaveLayoutUseCase) Execute(ctx context.Context, input SaveLayoutInput) error {
	if len(input.Columns) == 0 {
		return domainerror.NewStoreError(
			domainerror.ErrCodeStoreUpdate,
			"column layout must not be empty",
			nil,
		)
	}

	known := make(map[string]bool, len(DefaultColumns))
	for _, c := range DefaultColumns {
		known[c.ID] = true
	}
	seen := make(map[string]bool, len(input.Columns))
	for _, c := range input.Columns {
		if !known[c.ID] || seen[c.ID] {
			return domainerror.NewStoreError(
				domainerror.ErrCodeStoreUpdate,
				fmt.Sprintf("unknown or duplicate column %q in layout", c.ID),
				nil,
			)
		}
		seen[c.ID] = true
	}

	if err := uc.layoutStore.Save(ctx, input.UserID, input.Columns); err != nil {
		return fmt.Errorf("failed to save column layout: %w", err)
	}
	return nil
}

// ResetLayoutUseCase removes a user's stored layout.
type ResetLayoutUseCase struct {
	layoutStore adapter.LayoutStore
}

// NewResetLayoutUseCase creates a new ResetLayoutUseCase instance.
func NewResetLayoutUseCase(layoutStore adapter.LayoutStore) *ResetLayoutUseCase {
	return &ResetLayoutUseCase{layoutStore: layoutStore}
}

// Execute drops the stored layout so the default order applies again.
func (uc *ResetLayoutUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	if err := uc.layoutStore.Reset(ctx, userID); err != nil {
		return fmt.Errorf("failed to reset column layout: %w", err)
	}
	return nil
}
