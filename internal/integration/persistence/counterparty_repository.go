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

// counterpartyRepository implements the adapter.CounterpartyRepository interface.
type counterpartyRepository struct {
	db *gorm.DB
}

// NewCounterpartyRepository creates a new counterparty repository instance.
func NewCounterpartyRepository(db *gorm.DB) adapter.CounterpartyRepository {
	return &counterpartyRepository{
		db: db,
	}
}

// Create creates a new counterparty in the database.
func (r *counterpartyRepository) Create(ctx context.Context, counterparty *entity.Counterparty) error {
	counterpartyModel := model.CounterpartyFromEntity(counterparty)
	result := r.db.WithContext(ctx).Create(counterpartyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a counterparty by its ID.
func (r *counterpartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Counterparty, error) {
	var counterpartyModel model.CounterpartyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&counterpartyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCounterpartyNotFound
		}
		return nil, result.Error
	}
	return counterpartyModel.ToEntity(), nil
}

// FindByType retrieves all active counterparties of the given type, ordered by name.
func (r *counterpartyRepository) FindByType(ctx context.Context, objectType entity.ObjectType) ([]*entity.Counterparty, error) {
	var counterpartyModels []model.CounterpartyModel
	result := r.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", string(objectType), true).
		Order("name ASC").
		Find(&counterpartyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	counterparties := make([]*entity.Counterparty, 0, len(counterpartyModels))
	for i := range counterpartyModels {
		counterparties = append(counterparties, counterpartyModels[i].ToEntity())
	}
	return counterparties, nil
}

// ExistsByNameAndType checks whether an active counterparty with the name
// exists for the type.
func (r *counterpartyRepository) ExistsByNameAndType(ctx context.Context, name string, objectType entity.ObjectType) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CounterpartyModel{}).
		Where("name = ? AND type = ? AND is_active = ?", name, string(objectType), true).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing counterparty in the database.
func (r *counterpartyRepository) Update(ctx context.Context, counterparty *entity.Counterparty) error {
	counterpartyModel := model.CounterpartyFromEntity(counterparty)
	result := r.db.WithContext(ctx).Save(counterpartyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a counterparty from the database.
func (r *counterpartyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CounterpartyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCounterpartyNotFound
	}
	return nil
}
