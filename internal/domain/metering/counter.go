package metering

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CounterType represents what a counter measures
type CounterType string

const (
	CounterTypeGas         CounterType = "gas"
	CounterTypeWater       CounterType = "water"
	CounterTypeElectricity CounterType = "electricity"
)

// IsValid checks if the value is a known counter type
func (t CounterType) IsValid() bool {
	switch t {
	case CounterTypeGas, CounterTypeWater, CounterTypeElectricity:
		return true
	}
	return false
}

// String returns the string representation of CounterType
func (t CounterType) String() string {
	return string(t)
}

// Counter represents a utility meter installed in a property. The number is
// the identifier printed on the physical device and is unique system-wide.
type Counter struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	UnitID     *uuid.UUID
	Number     string
	Type       CounterType

	Readings []CounterReading `gorm:"foreignKey:CounterID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCounter creates a counter for a property, optionally bound to a unit
func NewCounter(propertyID uuid.UUID, unitID *uuid.UUID, number string, counterType CounterType) (*Counter, error) {
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY_ID", "Property ID cannot be empty")
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewDomainError("INVALID_COUNTER_NUMBER", "Counter number cannot be empty")
	}
	if !counterType.IsValid() {
		return nil, shared.NewDomainError("INVALID_COUNTER_TYPE", "Counter type must be one of gas, water, electricity")
	}

	now := time.Now()
	return &Counter{
		ID:         uuid.New(),
		PropertyID: propertyID,
		UnitID:     unitID,
		Number:     number,
		Type:       counterType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// NewReading appends a reading taken at the given time. Readings are
// append-only; corrections happen by recording a new reading.
func (c *Counter) NewReading(value decimal.Decimal, readAt time.Time) (*CounterReading, error) {
	if value.IsNegative() {
		return nil, shared.NewDomainError("INVALID_READING", "Counter reading cannot be negative")
	}
	if readAt.IsZero() {
		readAt = time.Now()
	}

	return &CounterReading{
		ID:        uuid.New(),
		CounterID: c.ID,
		Value:     value,
		ReadAt:    readAt,
		CreatedAt: time.Now(),
	}, nil
}

// CounterReading is a single meter reading
type CounterReading struct {
	ID        uuid.UUID
	CounterID uuid.UUID
	Value     decimal.Decimal
	ReadAt    time.Time
	CreatedAt time.Time
}
