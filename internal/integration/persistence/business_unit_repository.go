// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
	"github.com/ledger-console/backend/internal/integration/persistence/model"
)

// businessUnitRepository implements the adapter.BusinessUnitRepository interface.
type businessUnitRepository struct {
	db *gorm.DB
}

// NewBusinessUnitRepository creates a new business unit repository instance.
func NewBusinessUnitRepository(db *gorm.DB) adapter.BusinessUnitRepository {
	return &businessUnitRepository{
		db: db,
	}
}

// Create creates a new business unit in the database.
func (r *businessUnitRepository) Create(ctx context.Context, unit *entity.BusinessUnit) error {
	unitModel := model.BusinessUnitFromEntity(unit)
	result := r.db.WithContext(ctx).Create(unitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a business unit by its ID.
func (r *businessUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessUnit, error) {
	var unitModel model.BusinessUnitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&unitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBusinessUnitNotFound
		}
		return nil, result.Error
	}
	return unitModel.ToEntity(), nil
}

// FindByName retrieves a business unit by its name.
func (r *businessUnitRepository) FindByName(ctx context.Context, name string) (*entity.BusinessUnit, error) {
	var unitModel model.BusinessUnitModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&unitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBusinessUnitNotFound
		}
		return nil, result.Error
	}
	return unitModel.ToEntity(), nil
}

// FindAll retrieves all business units ordered by code.
func (r *businessUnitRepository) FindAll(ctx context.Context) ([]*entity.BusinessUnit, error) {
	var unitModels []model.BusinessUnitModel
	result := r.db.WithContext(ctx).Order("code ASC").Find(&unitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	units := make([]*entity.BusinessUnit, 0, len(unitModels))
	for i := range unitModels {
		units = append(units, unitModels[i].ToEntity())
	}
	return units, nil
}

// ExistsByCode checks whether a business unit with the given code exists.
func (r *businessUnitRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BusinessUnitModel{}).
		Where("code = ?", code).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing business unit in the database.
func (r *businessUnitRepository) Update(ctx context.Context, unit *entity.BusinessUnit) error {
	unitModel := model.BusinessUnitFromEntity(unit)
	result := r.db.WithContext(ctx).Save(unitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
