package metering

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/metering"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/immotool/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CounterService handles utility meters and their readings
type CounterService struct {
	counterRepo  metering.Repository
	propertyRepo property.Repository
	logger       *zap.Logger
}

// NewCounterService creates a new CounterService
func NewCounterService(counterRepo metering.Repository, propertyRepo property.Repository, logger *zap.Logger) *CounterService {
	return &CounterService{
		counterRepo:  counterRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Create registers a counter for a property
func (s *CounterService) Create(ctx context.Context, req CreateCounterRequest) (*CounterResponse, error) {
	if _, err := s.propertyRepo.FindByID(ctx, req.PropertyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Property not found")
		}
		return nil, err
	}

	// Counter numbers identify the physical device and must stay unique
	existing, err := s.counterRepo.FindByNumber(ctx, req.Number)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A counter with this number already exists")
	}

	counter, err := metering.NewCounter(req.PropertyID, req.UnitID, req.Number, metering.CounterType(req.Type))
	if err != nil {
		return nil, err
	}

	if err := s.counterRepo.Save(ctx, counter); err != nil {
		return nil, err
	}

	s.logger.Info("Counter created",
		zap.String("counter_id", counter.ID.String()),
		zap.String("number", counter.Number),
		zap.String("type", counter.Type.String()))

	resp := ToCounterResponse(counter)
	return &resp, nil
}

// AddReading appends a reading to the counter identified by its number
func (s *CounterService) AddReading(ctx context.Context, number string, req AddReadingRequest) (*ReadingResponse, error) {
	counter, err := s.counterRepo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Counter not found")
		}
		return nil, err
	}

	reading, err := counter.NewReading(req.Value, req.ReadAt)
	if err != nil {
		return nil, err
	}

	if err := s.counterRepo.AddReading(ctx, reading); err != nil {
		return nil, err
	}

	s.logger.Info("Counter reading recorded",
		zap.String("counter_number", counter.Number),
		zap.String("value", reading.Value.String()))

	resp := ToReadingResponse(reading)
	return &resp, nil
}

// GetByNumber loads a counter with its readings
func (s *CounterService) GetByNumber(ctx context.Context, number string) (*CounterResponse, error) {
	counter, err := s.counterRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	resp := ToCounterResponse(counter)
	return &resp, nil
}

// ListByProperty returns all counters of a property
func (s *CounterService) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]CounterResponse, error) {
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}

	counters, err := s.counterRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return ToCounterResponses(counters), nil
}
