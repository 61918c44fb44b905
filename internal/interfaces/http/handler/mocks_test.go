package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/identity"
	"github.com/immotool/backend/internal/domain/letting"
	"github.com/immotool/backend/internal/domain/metering"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/immotool/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
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

// MockUnitRepository is a mock implementation of property.UnitRepository
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]property.Unit, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]property.Unit), args.Error(1)
}

func (m *MockUnitRepository) Save(ctx context.Context, unit *property.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

// MockTenantRepository is a mock implementation of letting.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*letting.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*letting.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]letting.Tenant, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]letting.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *letting.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContractRepository is a mock implementation of letting.ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*letting.RentContract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*letting.RentContract), args.Error(1)
}

func (m *MockContractRepository) FindOpenByUnit(ctx context.Context, unitID uuid.UUID) (*letting.RentContract, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*letting.RentContract), args.Error(1)
}

func (m *MockContractRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]letting.RentContract, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]letting.RentContract), args.Error(1)
}

func (m *MockContractRepository) Save(ctx context.Context, contract *letting.RentContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) Assign(ctx context.Context, contract *letting.RentContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) Handover(ctx context.Context, contract *letting.RentContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

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

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
