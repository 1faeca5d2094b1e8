// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ledger-console/backend/internal/application/adapter"
)

// ColumnSettingDTO represents one column of the transaction table layout.
type ColumnSettingDTO struct {
	ID      string `json:"id" binding:"required"`
	Visible bool   `json:"visible"`
}

// SaveLayoutRequest represents the request body for saving a column layout.
type SaveLayoutRequest struct {
	Columns []ColumnSettingDTO `json:"columns" binding:"required,min=1,dive"`
}

// LayoutResponse represents a user's resolved column layout.
type LayoutResponse struct {
	Columns    []ColumnSettingDTO `json:"columns"`
	Customized bool               `json:"customized"`
}

// ToLayoutResponse converts column settings to the layout DTO.
func ToLayoutResponse(columns []adapter.ColumnSetting, customized bool) LayoutResponse {
	dtos := make([]ColumnSettingDTO, len(columns))
	for i, col := range columns {
		dtos[i] = ColumnSettingDTO{
			ID:      col.ID,
			Visible: col.Visible,
		}
	}
	return LayoutResponse{
		Columns:    dtos,
		Customized: customized,
	}
}

// ToColumnSettings converts layout DTOs to adapter column settings.
func ToColumnSettings(dtos []ColumnSettingDTO) []adapter.ColumnSetting {
	columns := make([]adapter.ColumnSetting, len(dtos))
	for i, col := range dtos {
		columns[i] = adapter.ColumnSetting{
			ID:      col.ID,
			Visible: col.Visible,
		}
	}
	return columns
}
