package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/metering"
	"github.com/immotool/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCounterRepository implements metering.Repository using GORM
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GormCounterRepository
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// FindByID finds a counter by its ID, including its readings
func (r *GormCounterRepository) FindByID(ctx context.Context, id uuid.UUID) (*metering.Counter, error) {
	var counter metering.Counter
	if err := r.db.WithContext(ctx).
		Preload("Readings", func(db *gorm.DB) *gorm.DB {
			return db.Order("counter_readings.read_at DESC")
		}).
		First(&counter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &counter, nil
}

// FindByNumber finds a counter by its unique number, including its readings
func (r *GormCounterRepository) FindByNumber(ctx context.Context, number string) (*metering.Counter, error) {
	var counter metering.Counter
	if err := r.db.WithContext(ctx).
		Preload("Readings", func(db *gorm.DB) *gorm.DB {
			return db.Order("counter_readings.read_at DESC")
		}).
		Where("number = ?", number).
		First(&counter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &counter, nil
}

// FindByProperty returns all counters of a property ordered by number
func (r *GormCounterRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]metering.Counter, error) {
	var counters []metering.Counter
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("number ASC").
		Find(&counters).Error; err != nil {
		return nil, err
	}
	return counters, nil
}

// Save creates or updates a counter without touching its readings
func (r *GormCounterRepository) Save(ctx context.Context, counter *metering.Counter) error {
	return r.db.WithContext(ctx).Omit("Readings").Save(counter).Error
}

// AddReading appends a reading. Readings are insert-only; existing rows are
// never updated through this repository.
func (r *GormCounterRepository) AddReading(ctx context.Context, reading *metering.CounterReading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

// Ensure GormCounterRepository implements metering.Repository
var _ metering.Repository = (*GormCounterRepository)(nil)
