package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/metering"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest represents a request to create a property with its units
type CreatePropertyRequest struct {
	Street          string   `json:"street" binding:"required,min=1,max=200"`
	StreetNumber    string   `json:"street_number" binding:"required,min=1,max=20"`
	ZipCode         int      `json:"zip_code" binding:"required,min=10000,max=99999"`
	City            string   `json:"city" binding:"required,min=1,max=100"`
	HeatingSystem   string   `json:"heating_system" binding:"required,oneof=heatpump oil gas districtheat"`
	Capacity        *float64 `json:"capacity" binding:"omitempty,min=0"`
	Units           int      `json:"units" binding:"min=0"`
	CommercialUnits int      `json:"commercial_units" binding:"min=0"`
}

// UpdateUnitRequest represents a request to update a unit. Assigning an
// active tenant to an occupied unit is rejected until the change is
// confirmed via the change-tenant operation.
type UpdateUnitRequest struct {
	Size           *float64         `json:"size"`
	Type           *string          `json:"type" binding:"omitempty,oneof=normal commercial"`
	ActiveTenantID *uuid.UUID       `json:"active_tenant_id"`
	ColdRent       *decimal.Decimal `json:"cold_rent"`
	UtilityRent    *decimal.Decimal `json:"utility_rent"`
}

// UpdateExpensesRequest sets the operating expense rates of a property
type UpdateExpensesRequest struct {
	Waste    decimal.Decimal `json:"waste"`
	Water    decimal.Decimal `json:"water"`
	BasicFee decimal.Decimal `json:"basic_fee"`
	Sewage   decimal.Decimal `json:"sewage"`
}

// PropertyListFilter represents filter options for the property list
type PropertyListFilter struct {
	Search   string `form:"search"`
	City     string `form:"city"`
	Heating  string `form:"heating" binding:"omitempty,oneof=heatpump oil gas districtheat"`
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	ID             uuid.UUID  `json:"id"`
	PropertyID     uuid.UUID  `json:"property_id"`
	Number         int        `json:"number"`
	Type           string     `json:"type"`
	Size           *float64   `json:"size,omitempty"`
	ActiveTenantID *uuid.UUID `json:"active_tenant_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CounterInfo is the counter summary embedded in a property detail response
type CounterInfo struct {
	ID     uuid.UUID  `json:"id"`
	UnitID *uuid.UUID `json:"unit_id,omitempty"`
	Number string     `json:"number"`
	Type   string     `json:"type"`
}

// PropertyResponse represents a property with its units and counters
type PropertyResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Street              string          `json:"street"`
	StreetNumber        string          `json:"street_number"`
	ZipCode             int             `json:"zip_code"`
	City                string          `json:"city"`
	HeatingSystem       string          `json:"heating_system"`
	Capacity            *float64        `json:"capacity,omitempty"`
	UnitCount           int             `json:"unit_count"`
	CommercialUnitCount int             `json:"commercial_unit_count"`
	Waste               decimal.Decimal `json:"waste"`
	Water               decimal.Decimal `json:"water"`
	BasicFee            decimal.Decimal `json:"basic_fee"`
	Sewage              decimal.Decimal `json:"sewage"`
	Units               []UnitResponse  `json:"units,omitempty"`
	Counters            []CounterInfo   `json:"counters,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// PropertyListResponse represents a list item for properties
type PropertyListResponse struct {
	ID            uuid.UUID `json:"id"`
	Street        string    `json:"street"`
	StreetNumber  string    `json:"street_number"`
	ZipCode       int       `json:"zip_code"`
	City          string    `json:"city"`
	HeatingSystem string    `json:"heating_system"`
	UnitCount     int       `json:"unit_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToUnitResponse converts a domain Unit to UnitResponse
func ToUnitResponse(u *property.Unit) UnitResponse {
	return UnitResponse{
		ID:             u.ID,
		PropertyID:     u.PropertyID,
		Number:         u.Number,
		Type:           u.Type.String(),
		Size:           u.Size,
		ActiveTenantID: u.ActiveTenantID,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// ToPropertyResponse converts a domain Property to PropertyResponse
func ToPropertyResponse(p *property.Property, counters []metering.Counter) PropertyResponse {
	units := make([]UnitResponse, len(p.Units))
	for i := range p.Units {
		units[i] = ToUnitResponse(&p.Units[i])
	}

	counterInfos := make([]CounterInfo, len(counters))
	for i, c := range counters {
		counterInfos[i] = CounterInfo{
			ID:     c.ID,
			UnitID: c.UnitID,
			Number: c.Number,
			Type:   c.Type.String(),
		}
	}

	return PropertyResponse{
		ID:                  p.ID,
		Street:              p.Street,
		StreetNumber:        p.StreetNumber,
		ZipCode:             p.ZipCode,
		City:                p.City,
		HeatingSystem:       p.HeatingSystem.String(),
		Capacity:            p.Capacity,
		UnitCount:           p.UnitCount,
		CommercialUnitCount: p.CommercialUnitCount,
		Waste:               p.WasteRate,
		Water:               p.WaterRate,
		BasicFee:            p.BasicFeeRate,
		Sewage:              p.SewageRate,
		Units:               units,
		Counters:            counterInfos,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// ToPropertyListResponse converts a domain Property to PropertyListResponse
func ToPropertyListResponse(p *property.Property) PropertyListResponse {
	return PropertyListResponse{
		ID:            p.ID,
		Street:        p.Street,
		StreetNumber:  p.StreetNumber,
		ZipCode:       p.ZipCode,
		City:          p.City,
		HeatingSystem: p.HeatingSystem.String(),
		UnitCount:     p.UnitCount + p.CommercialUnitCount,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPropertyListResponses converts a slice of domain Properties
func ToPropertyListResponses(properties []property.Property) []PropertyListResponse {
	responses := make([]PropertyListResponse, len(properties))
	for i, p := range properties {
		responses[i] = ToPropertyListResponse(&p)
	}
	return responses
}
