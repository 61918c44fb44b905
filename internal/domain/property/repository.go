package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/shared"
)

// Repository defines the persistence interface for properties
type Repository interface {
	// FindByID loads a property with its units
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)

	// FindByAddress looks a property up by street and street number
	FindByAddress(ctx context.Context, street, streetNumber string) (*Property, error)

	// FindAll returns properties matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Property, error)

	// Count returns the number of properties matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CreateWithUnits persists a property and all its units in one transaction
	CreateWithUnits(ctx context.Context, property *Property) error

	// Save persists changes to a property (without touching its units)
	Save(ctx context.Context, property *Property) error

	// Delete removes a property; units and counters go with it via cascade
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitRepository defines the persistence interface for units
type UnitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)

	// FindByProperty returns all units of a property ordered by number
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]Unit, error)

	Save(ctx context.Context, unit *Unit) error
}
