package metering

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for counters and readings
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Counter, error)

	// FindByNumber loads a counter with its readings, newest reading first
	FindByNumber(ctx context.Context, number string) (*Counter, error)

	// FindByProperty returns all counters of a property
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]Counter, error)

	Save(ctx context.Context, counter *Counter) error

	// AddReading appends a reading; existing readings are never rewritten
	AddReading(ctx context.Context, reading *CounterReading) error
}
