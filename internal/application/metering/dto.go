package metering

import (
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/metering"
	"github.com/shopspring/decimal"
)

// CreateCounterRequest represents a request to register a counter
type CreateCounterRequest struct {
	PropertyID uuid.UUID  `json:"property_id" binding:"required"`
	UnitID     *uuid.UUID `json:"unit_id"`
	Number     string     `json:"number" binding:"required,min=1,max=50"`
	Type       string     `json:"type" binding:"required,oneof=gas water electricity"`
}

// AddReadingRequest represents a new meter reading
type AddReadingRequest struct {
	Value  decimal.Decimal `json:"value" binding:"required"`
	ReadAt time.Time       `json:"read_at"`
}

// ReadingResponse represents a meter reading in API responses
type ReadingResponse struct {
	ID        uuid.UUID       `json:"id"`
	CounterID uuid.UUID       `json:"counter_id"`
	Value     decimal.Decimal `json:"value"`
	ReadAt    time.Time       `json:"read_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// CounterResponse represents a counter with its readings
type CounterResponse struct {
	ID         uuid.UUID         `json:"id"`
	PropertyID uuid.UUID         `json:"property_id"`
	UnitID     *uuid.UUID        `json:"unit_id,omitempty"`
	Number     string            `json:"number"`
	Type       string            `json:"type"`
	Readings   []ReadingResponse `json:"readings,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ToReadingResponse converts a domain CounterReading to ReadingResponse
func ToReadingResponse(r *metering.CounterReading) ReadingResponse {
	return ReadingResponse{
		ID:        r.ID,
		CounterID: r.CounterID,
		Value:     r.Value,
		ReadAt:    r.ReadAt,
		CreatedAt: r.CreatedAt,
	}
}

// ToCounterResponse converts a domain Counter to CounterResponse
func ToCounterResponse(c *metering.Counter) CounterResponse {
	readings := make([]ReadingResponse, len(c.Readings))
	for i := range c.Readings {
		readings[i] = ToReadingResponse(&c.Readings[i])
	}

	return CounterResponse{
		ID:         c.ID,
		PropertyID: c.PropertyID,
		UnitID:     c.UnitID,
		Number:     c.Number,
		Type:       c.Type.String(),
		Readings:   readings,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToCounterResponses converts a slice of domain Counters
func ToCounterResponses(counters []metering.Counter) []CounterResponse {
	responses := make([]CounterResponse, len(counters))
	for i := range counters {
		responses[i] = ToCounterResponse(&counters[i])
	}
	return responses
}
