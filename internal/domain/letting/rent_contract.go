package letting

import (
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RentContract records a tenancy for a unit. A contract is open while
// MovedOut is nil; at most one open contract exists per unit.
type RentContract struct {
	ID          uuid.UUID
	UnitID      uuid.UUID
	TenantID    uuid.UUID
	ColdRent    decimal.Decimal
	UtilityRent decimal.Decimal
	MovedIn     time.Time
	MovedOut    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRentContract opens a contract for a tenant on a unit, starting now
func NewRentContract(unitID, tenantID uuid.UUID, coldRent, utilityRent decimal.Decimal) (*RentContract, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT_ID", "Unit ID cannot be empty")
	}
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if coldRent.IsNegative() || utilityRent.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RENT", "Rent cannot be negative")
	}

	now := time.Now()
	return &RentContract{
		ID:          uuid.New(),
		UnitID:      unitID,
		TenantID:    tenantID,
		ColdRent:    coldRent,
		UtilityRent: utilityRent,
		MovedIn:     now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsOpen reports whether the contract is still running
func (c *RentContract) IsOpen() bool {
	return c.MovedOut == nil
}

// Close ends the contract at the given time
func (c *RentContract) Close(movedOut time.Time) error {
	if c.MovedOut != nil {
		return shared.NewDomainError("CONTRACT_CLOSED", "Contract is already closed")
	}
	if movedOut.Before(c.MovedIn) {
		return shared.NewDomainError("INVALID_MOVED_OUT", "Move-out date cannot be before move-in date")
	}
	c.MovedOut = &movedOut
	c.UpdatedAt = time.Now()
	return nil
}

// SetRents updates the rent amounts on an open contract
func (c *RentContract) SetRents(coldRent, utilityRent decimal.Decimal) error {
	if c.MovedOut != nil {
		return shared.NewDomainError("CONTRACT_CLOSED", "Cannot change rents on a closed contract")
	}
	if coldRent.IsNegative() || utilityRent.IsNegative() {
		return shared.NewDomainError("INVALID_RENT", "Rent cannot be negative")
	}
	c.ColdRent = coldRent
	c.UtilityRent = utilityRent
	c.UpdatedAt = time.Now()
	return nil
}
