package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/immotool/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPropertyRepository implements property.Repository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID finds a property by its ID, including its units
func (r *GormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	var p property.Property
	if err := r.db.WithContext(ctx).
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("units.number ASC")
		}).
		First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByAddress finds a property by street and street number
func (r *GormPropertyRepository) FindByAddress(ctx context.Context, street, streetNumber string) (*property.Property, error) {
	var p property.Property
	if err := r.db.WithContext(ctx).
		Where("street = ? AND street_number = ?", street, streetNumber).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll finds all properties matching the filter
func (r *GormPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Property, error) {
	var properties []property.Property
	query := r.applyFilter(r.db.WithContext(ctx).Model(&property.Property{}), filter)

	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Count counts properties matching the filter
func (r *GormPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&property.Property{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateWithUnits persists a property together with all its units in one transaction
func (r *GormPropertyRepository) CreateWithUnits(ctx context.Context, p *property.Property) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Units are inserted through the association, so the whole seed
		// either lands or rolls back together.
		return tx.Create(p).Error
	})
}

// Save persists changes to a property without touching its units
func (r *GormPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	return r.db.WithContext(ctx).Omit("Units").Save(p).Error
}

// Delete deletes a property; units and counters cascade at the database level
func (r *GormPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&property.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormPropertyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply pagination
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Apply ordering
	orderBy := ValidateSortField(filter.OrderBy, PropertySortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPropertyRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	// Apply search across the address fields
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("street ILIKE ? OR city ILIKE ?", searchPattern, searchPattern)
	}

	// Apply additional filters
	for key, value := range filter.Filters {
		switch key {
		case "city":
			query = query.Where("city = ?", value)
		case "zip_code":
			query = query.Where("zip_code = ?", value)
		case "heating_system":
			query = query.Where("heating_system = ?", value)
		}
	}

	return query
}

// Ensure GormPropertyRepository implements property.Repository
var _ property.Repository = (*GormPropertyRepository)(nil)
