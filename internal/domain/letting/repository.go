package letting

import (
	"context"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/shared"
)

// TenantRepository defines the persistence interface for tenants
type TenantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, tenant *Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContractRepository defines the persistence interface for rent contracts
type ContractRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentContract, error)

	// FindOpenByUnit returns the unit's open contract, shared.ErrNotFound
	// when the unit is vacant
	FindOpenByUnit(ctx context.Context, unitID uuid.UUID) (*RentContract, error)

	// FindByUnit returns the full contract history of a unit, newest first
	FindByUnit(ctx context.Context, unitID uuid.UUID) ([]RentContract, error)

	Save(ctx context.Context, contract *RentContract) error

	// Assign atomically opens the given contract on a vacant unit and points
	// the unit's active tenant at the new occupant.
	Assign(ctx context.Context, contract *RentContract) error

	// Handover atomically closes the unit's open contract, opens the given
	// contract and points the unit's active tenant at the new occupant.
	// Returns shared.ErrNoOpenContract when there is no contract to close.
	Handover(ctx context.Context, contract *RentContract) error
}
