package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/immotool/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormUnitRepository implements property.UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by its ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	var unit property.Unit
	if err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// FindByProperty finds all units of a property ordered by their number
func (r *GormUnitRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]property.Unit, error) {
	var units []property.Unit
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("number ASC").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *property.Unit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

// Ensure GormUnitRepository implements property.UnitRepository
var _ property.UnitRepository = (*GormUnitRepository)(nil)
