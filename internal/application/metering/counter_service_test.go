package metering

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/metering"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/immotool/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCounterRepository is a mock implementation of metering.Repository
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) FindByID(ctx context.Context, id uuid.UUID) (*metering.Counter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metering.Counter), args.Error(1)
}

func (m *MockCounterRepository) FindByNumber(ctx context.Context, number string) (*metering.Counter, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metering.Counter), args.Error(1)
}

func (m *MockCounterRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]metering.Counter, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]metering.Counter), args.Error(1)
}

func (m *MockCounterRepository) Save(ctx context.Context, counter *metering.Counter) error {
	args := m.Called(ctx, counter)
	return args.Error(0)
}

func (m *MockCounterRepository) AddReading(ctx context.Context, reading *metering.CounterReading) error {
	args := m.Called(ctx, reading)
	return args.Error(0)
}

// MockPropertyRepository is a mock implementation of property.Repository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByAddress(ctx context.Context, street, streetNumber string) (*property.Property, error) {
	args := m.Called(ctx, street, streetNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Property, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *MockPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) CreateWithUnits(ctx context.Context, p *property.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newCounterTestService() (*CounterService, *MockCounterRepository, *MockPropertyRepository) {
	mockCounterRepo := new(MockCounterRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	service := NewCounterService(mockCounterRepo, mockPropertyRepo, zap.NewNop())
	return service, mockCounterRepo, mockPropertyRepo
}

func newServiceTestProperty(t *testing.T) *property.Property {
	p, err := property.NewProperty("Hauptstraße", "12", 80331, "München", property.HeatingGas, nil, 2, 0)
	require.NoError(t, err)
	return p
}

// =============================================================================
// CounterService Tests
// =============================================================================

func TestCounterService_Create_Success(t *testing.T) {
	service, mockCounterRepo, mockPropertyRepo := newCounterTestService()

	ctx := context.Background()
	p := newServiceTestProperty(t)

	mockPropertyRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	mockCounterRepo.On("FindByNumber", ctx, "4711-W").Return(nil, shared.ErrNotFound)
	mockCounterRepo.On("Save", ctx, mock.AnythingOfType("*metering.Counter")).Return(nil)

	result, err := service.Create(ctx, CreateCounterRequest{
		PropertyID: p.ID,
		Number:     "4711-W",
		Type:       "water",
	})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "4711-W", result.Number)
	assert.Equal(t, "water", result.Type)
	mockCounterRepo.AssertExpectations(t)
}

func TestCounterService_Create_PropertyNotFound(t *testing.T) {
	service, mockCounterRepo, mockPropertyRepo := newCounterTestService()

	ctx := context.Background()
	propertyID := uuid.New()

	mockPropertyRepo.On("FindByID", ctx, propertyID).Return(nil, shared.ErrNotFound)

	result, err := service.Create(ctx, CreateCounterRequest{
		PropertyID: propertyID,
		Number:     "4711",
		Type:       "gas",
	})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockCounterRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCounterService_Create_DuplicateNumber(t *testing.T) {
	service, mockCounterRepo, mockPropertyRepo := newCounterTestService()

	ctx := context.Background()
	p := newServiceTestProperty(t)
	existing, err := metering.NewCounter(p.ID, nil, "4711", metering.CounterTypeGas)
	require.NoError(t, err)

	mockPropertyRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	mockCounterRepo.On("FindByNumber", ctx, "4711").Return(existing, nil)

	result, err := service.Create(ctx, CreateCounterRequest{
		PropertyID: p.ID,
		Number:     "4711",
		Type:       "gas",
	})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockCounterRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCounterService_AddReading_Success(t *testing.T) {
	service, mockCounterRepo, _ := newCounterTestService()

	ctx := context.Background()
	counter, err := metering.NewCounter(uuid.New(), nil, "4711", metering.CounterTypeElectricity)
	require.NoError(t, err)

	mockCounterRepo.On("FindByNumber", ctx, "4711").Return(counter, nil)
	mockCounterRepo.On("AddReading", ctx, mock.AnythingOfType("*metering.CounterReading")).Return(nil)

	readAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	result, err := service.AddReading(ctx, "4711", AddReadingRequest{
		Value:  decimal.NewFromFloat(1234.5),
		ReadAt: readAt,
	})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, counter.ID, result.CounterID)
	assert.Equal(t, readAt, result.ReadAt)
	mockCounterRepo.AssertExpectations(t)
}

func TestCounterService_AddReading_CounterNotFound(t *testing.T) {
	service, mockCounterRepo, _ := newCounterTestService()

	ctx := context.Background()

	mockCounterRepo.On("FindByNumber", ctx, "unknown").Return(nil, shared.ErrNotFound)

	result, err := service.AddReading(ctx, "unknown", AddReadingRequest{
		Value: decimal.NewFromInt(10),
	})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockCounterRepo.AssertNotCalled(t, "AddReading", mock.Anything, mock.Anything)
}

func TestCounterService_AddReading_NegativeValue(t *testing.T) {
	service, mockCounterRepo, _ := newCounterTestService()

	ctx := context.Background()
	counter, err := metering.NewCounter(uuid.New(), nil, "4711", metering.CounterTypeGas)
	require.NoError(t, err)

	mockCounterRepo.On("FindByNumber", ctx, "4711").Return(counter, nil)

	result, err := service.AddReading(ctx, "4711", AddReadingRequest{
		Value: decimal.NewFromInt(-1),
	})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_READING", domainErr.Code)
	mockCounterRepo.AssertNotCalled(t, "AddReading", mock.Anything, mock.Anything)
}

func TestCounterService_GetByNumber(t *testing.T) {
	service, mockCounterRepo, _ := newCounterTestService()

	ctx := context.Background()
	counter, err := metering.NewCounter(uuid.New(), nil, "4711", metering.CounterTypeWater)
	require.NoError(t, err)
	reading, err := counter.NewReading(decimal.NewFromInt(100), time.Now())
	require.NoError(t, err)
	counter.Readings = []metering.CounterReading{*reading}

	mockCounterRepo.On("FindByNumber", ctx, "4711").Return(counter, nil)

	result, err := service.GetByNumber(ctx, "4711")

	assert.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Readings, 1)
	assert.True(t, result.Readings[0].Value.Equal(decimal.NewFromInt(100)))
}

func TestCounterService_ListByProperty_PropertyNotFound(t *testing.T) {
	service, _, mockPropertyRepo := newCounterTestService()

	ctx := context.Background()
	propertyID := uuid.New()

	mockPropertyRepo.On("FindByID", ctx, propertyID).Return(nil, shared.ErrNotFound)

	result, err := service.ListByProperty(ctx, propertyID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
