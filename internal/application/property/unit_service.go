package property

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/letting"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/immotool/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// UnitService handles unit updates including first-time tenant assignment
type UnitService struct {
	unitRepo     property.UnitRepository
	tenantRepo   letting.TenantRepository
	contractRepo letting.ContractRepository
	logger       *zap.Logger
}

// NewUnitService creates a new UnitService
func NewUnitService(
	unitRepo property.UnitRepository,
	tenantRepo letting.TenantRepository,
	contractRepo letting.ContractRepository,
	logger *zap.Logger,
) *UnitService {
	return &UnitService{
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
		contractRepo: contractRepo,
		logger:       logger,
	}
}

// GetByID loads a single unit
func (s *UnitService) GetByID(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUnitResponse(unit)
	return &resp, nil
}

// ListByProperty returns all units of a property ordered by number
func (s *UnitService) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]UnitResponse, error) {
	units, err := s.unitRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	responses := make([]UnitResponse, len(units))
	for i := range units {
		responses[i] = ToUnitResponse(&units[i])
	}
	return responses, nil
}

// Update changes unit attributes and, when the unit is vacant, assigns the
// requested tenant by opening a rent contract. Replacing the occupant of an
// occupied unit is refused with TENANT_CHANGE_REQUIRED; the client confirms
// the handover through the letting service instead.
func (s *UnitService) Update(ctx context.Context, unitID uuid.UUID, req UpdateUnitRequest) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}

	if req.ActiveTenantID != nil {
		if err := s.applyTenant(ctx, unit, *req.ActiveTenantID, req.ColdRent, req.UtilityRent); err != nil {
			return nil, err
		}
	}

	if req.Size != nil || req.Type != nil {
		if req.Size != nil {
			if err := unit.SetSize(req.Size); err != nil {
				return nil, err
			}
		}
		if req.Type != nil {
			if err := unit.SetType(property.UnitType(*req.Type)); err != nil {
				return nil, err
			}
		}
		// The tenant pointer is persisted by the contract repository; Save
		// only covers the scalar attributes.
		if err := s.unitRepo.Save(ctx, unit); err != nil {
			return nil, err
		}
	}

	resp := ToUnitResponse(unit)
	return &resp, nil
}

func (s *UnitService) applyTenant(ctx context.Context, unit *property.Unit, tenantID uuid.UUID, coldRent, utilityRent *decimal.Decimal) error {
	if _, err := s.tenantRepo.FindByID(ctx, tenantID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Tenant not found")
		}
		return err
	}

	// Occupied by someone else: require an explicit, confirmed handover
	if unit.ActiveTenantID != nil && *unit.ActiveTenantID != tenantID {
		return shared.ErrTenantChangeRequired
	}

	cold := decimal.Zero
	utility := decimal.Zero
	if coldRent != nil {
		cold = *coldRent
	}
	if utilityRent != nil {
		utility = *utilityRent
	}

	if unit.ActiveTenantID == nil {
		// Vacant unit: open a contract and point the unit at the tenant
		contract, err := letting.NewRentContract(unit.ID, tenantID, cold, utility)
		if err != nil {
			return err
		}
		if err := s.contractRepo.Assign(ctx, contract); err != nil {
			return err
		}
		unit.ActiveTenantID = &tenantID

		s.logger.Info("Tenant assigned to vacant unit",
			zap.String("unit_id", unit.ID.String()),
			zap.String("tenant_id", tenantID.String()))
		return nil
	}

	// Same tenant: update the rents on the open contract
	if coldRent == nil && utilityRent == nil {
		return nil
	}
	contract, err := s.contractRepo.FindOpenByUnit(ctx, unit.ID)
	if err != nil {
		return err
	}
	if coldRent == nil {
		cold = contract.ColdRent
	}
	if utilityRent == nil {
		utility = contract.UtilityRent
	}
	if err := contract.SetRents(cold, utility); err != nil {
		return err
	}
	return s.contractRepo.Save(ctx, contract)
}
