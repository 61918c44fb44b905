package property

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// HeatingSystem represents the heating installation of a property
type HeatingSystem string

const (
	HeatingHeatPump     HeatingSystem = "heatpump"
	HeatingOil          HeatingSystem = "oil"
	HeatingGas          HeatingSystem = "gas"
	HeatingDistrictHeat HeatingSystem = "districtheat"
)

// IsValid checks if the value is a known heating system
func (h HeatingSystem) IsValid() bool {
	switch h {
	case HeatingHeatPump, HeatingOil, HeatingGas, HeatingDistrictHeat:
		return true
	}
	return false
}

// String returns the string representation of HeatingSystem
func (h HeatingSystem) String() string {
	return string(h)
}

// Zip code range for German postal codes
const (
	MinZipCode = 10000
	MaxZipCode = 99999
)

// Property represents a managed building. It is the aggregate root for
// units; operating expense rates used for yearly statements live here too.
type Property struct {
	ID                  uuid.UUID
	Street              string
	StreetNumber        string
	ZipCode             int
	City                string
	HeatingSystem       HeatingSystem
	Capacity            *float64
	UnitCount           int
	CommercialUnitCount int

	// Operating expense rates, per year
	WasteRate    decimal.Decimal
	WaterRate    decimal.Decimal
	BasicFeeRate decimal.Decimal
	SewageRate   decimal.Decimal

	Units []Unit `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProperty creates a property together with its units. Residential units
// are numbered 1..unitCount, commercial units continue the sequence at
// unitCount+1..unitCount+commercialCount.
func NewProperty(street, streetNumber string, zipCode int, city string, heating HeatingSystem, capacity *float64, unitCount, commercialCount int) (*Property, error) {
	street = strings.TrimSpace(street)
	streetNumber = strings.TrimSpace(streetNumber)
	city = strings.TrimSpace(city)

	if street == "" {
		return nil, shared.NewDomainError("INVALID_STREET", "Street cannot be empty")
	}
	if streetNumber == "" {
		return nil, shared.NewDomainError("INVALID_STREET_NUMBER", "Street number cannot be empty")
	}
	if zipCode < MinZipCode || zipCode > MaxZipCode {
		return nil, shared.NewDomainError("INVALID_ZIP_CODE", "Zip code must be between 10000 and 99999")
	}
	if city == "" {
		return nil, shared.NewDomainError("INVALID_CITY", "City cannot be empty")
	}
	if !heating.IsValid() {
		return nil, shared.NewDomainError("INVALID_HEATING_SYSTEM", "Heating system must be one of heatpump, oil, gas, districtheat")
	}
	if capacity != nil && *capacity < 0 {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity cannot be negative")
	}
	if unitCount < 0 || commercialCount < 0 {
		return nil, shared.NewDomainError("INVALID_UNIT_COUNT", "Unit counts cannot be negative")
	}

	now := time.Now()
	p := &Property{
		ID:                  uuid.New(),
		Street:              street,
		StreetNumber:        streetNumber,
		ZipCode:             zipCode,
		City:                city,
		HeatingSystem:       heating,
		Capacity:            capacity,
		UnitCount:           unitCount,
		CommercialUnitCount: commercialCount,
		WasteRate:           decimal.Zero,
		WaterRate:           decimal.Zero,
		BasicFeeRate:        decimal.Zero,
		SewageRate:          decimal.Zero,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	p.Units = make([]Unit, 0, unitCount+commercialCount)
	for i := 0; i < unitCount; i++ {
		p.Units = append(p.Units, newUnit(p.ID, i+1, UnitTypeNormal))
	}
	for i := 0; i < commercialCount; i++ {
		p.Units = append(p.Units, newUnit(p.ID, unitCount+i+1, UnitTypeCommercial))
	}

	return p, nil
}

// SetExpenseRates updates the operating expense rates of the property
func (p *Property) SetExpenseRates(waste, water, basicFee, sewage decimal.Decimal) error {
	for _, rate := range []decimal.Decimal{waste, water, basicFee, sewage} {
		if rate.IsNegative() {
			return shared.NewDomainError("INVALID_EXPENSE_RATE", "Expense rates cannot be negative")
		}
	}

	p.WasteRate = waste
	p.WaterRate = water
	p.BasicFeeRate = basicFee
	p.SewageRate = sewage
	p.UpdatedAt = time.Now()

	return nil
}
