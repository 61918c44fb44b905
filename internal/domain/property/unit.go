package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/shared"
)

// UnitType distinguishes residential from commercial units
type UnitType string

const (
	UnitTypeNormal     UnitType = "normal"
	UnitTypeCommercial UnitType = "commercial"
)

// IsValid checks if the value is a known unit type
func (t UnitType) IsValid() bool {
	return t == UnitTypeNormal || t == UnitTypeCommercial
}

// String returns the string representation of UnitType
func (t UnitType) String() string {
	return string(t)
}

// Unit represents a single lettable unit within a property. The number is
// assigned when the property is created and never changes.
type Unit struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	Number         int
	Type           UnitType
	Size           *float64
	ActiveTenantID *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func newUnit(propertyID uuid.UUID, number int, unitType UnitType) Unit {
	now := time.Now()
	return Unit{
		ID:         uuid.New(),
		PropertyID: propertyID,
		Number:     number,
		Type:       unitType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsOccupied reports whether the unit currently has an active tenant
func (u *Unit) IsOccupied() bool {
	return u.ActiveTenantID != nil
}

// SetSize updates the unit size in square meters
func (u *Unit) SetSize(size *float64) error {
	if size != nil && *size <= 0 {
		return shared.NewDomainError("INVALID_SIZE", "Unit size must be positive")
	}
	u.Size = size
	u.UpdatedAt = time.Now()
	return nil
}

// SetType updates the unit type
func (u *Unit) SetType(unitType UnitType) error {
	if !unitType.IsValid() {
		return shared.NewDomainError("INVALID_UNIT_TYPE", "Unit type must be normal or commercial")
	}
	u.Type = unitType
	u.UpdatedAt = time.Now()
	return nil
}
