package property

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/metering"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/immotool/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PropertyService handles property-related business operations
type PropertyService struct {
	propertyRepo property.Repository
	meteringRepo metering.Repository
	logger       *zap.Logger
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo property.Repository, meteringRepo metering.Repository, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		meteringRepo: meteringRepo,
		logger:       logger,
	}
}

// Create creates a property together with its numbered units
func (s *PropertyService) Create(ctx context.Context, req CreatePropertyRequest) (*PropertyResponse, error) {
	// A property is identified by its address
	existing, err := s.propertyRepo.FindByAddress(ctx, req.Street, req.StreetNumber)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A property at this address already exists")
	}

	p, err := property.NewProperty(
		req.Street,
		req.StreetNumber,
		req.ZipCode,
		req.City,
		property.HeatingSystem(req.HeatingSystem),
		req.Capacity,
		req.Units,
		req.CommercialUnits,
	)
	if err != nil {
		return nil, err
	}

	if err := s.propertyRepo.CreateWithUnits(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Property created",
		zap.String("property_id", p.ID.String()),
		zap.String("street", p.Street),
		zap.Int("units", len(p.Units)))

	resp := ToPropertyResponse(p, nil)
	return &resp, nil
}

// GetByID loads a property with its units and counters
func (s *PropertyService) GetByID(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counters, err := s.meteringRepo.FindByProperty(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	resp := ToPropertyResponse(p, counters)
	return &resp, nil
}

// List returns a paginated property list
func (s *PropertyService) List(ctx context.Context, filter PropertyListFilter) (*shared.Paginated[PropertyListResponse], error) {
	domainFilter := toDomainFilter(filter)

	properties, err := s.propertyRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.propertyRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToPropertyListResponses(properties), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Delete removes a property; its units and counters cascade
func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.propertyRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Property deleted", zap.String("property_id", id.String()))
	return nil
}

// UpdateExpenses sets the operating expense rates of a property
func (s *PropertyService) UpdateExpenses(ctx context.Context, id uuid.UUID, req UpdateExpensesRequest) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.SetExpenseRates(req.Waste, req.Water, req.BasicFee, req.Sewage); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Property expense rates updated", zap.String("property_id", id.String()))

	resp := ToPropertyResponse(p, nil)
	return &resp, nil
}

func toDomainFilter(filter PropertyListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.City != "" {
		domainFilter.Filters["city"] = filter.City
	}
	if filter.Heating != "" {
		domainFilter.Filters["heating_system"] = filter.Heating
	}
	return domainFilter
}
