package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledger-console/backend/internal/integration/persistence/model"
)

// SeedBusinessUnits inserts the default business units on an empty table.
// Allocation rules reference these codes, so a fresh deployment needs them
// before any indirect transaction can be recorded.
func SeedBusinessUnits(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.BusinessUnitModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count business units: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	defaults := []model.BusinessUnitModel{
		{Code: "BU-North", Name: "North Region"},
		{Code: "BU-Central", Name: "Central Region"},
		{Code: "BU-South", Name: "South Region"},
		{Code: "BU-Online", Name: "Online Channel"},
	}
	for i := range defaults {
		defaults[i].ID = uuid.New()
		defaults[i].Status = "active"
		defaults[i].CreatedAt = now
		defaults[i].UpdatedAt = now
	}

	if err := db.Create(&defaults).Error; err != nil {
		return fmt.Errorf("failed to seed business units: %w", err)
	}
	return nil
}
