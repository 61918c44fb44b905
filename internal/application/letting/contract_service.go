package letting

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/letting"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/immotool/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ContractService handles rent contracts and confirmed tenant handovers
type ContractService struct {
	contractRepo letting.ContractRepository
	tenantRepo   letting.TenantRepository
	unitRepo     property.UnitRepository
	logger       *zap.Logger
}

// NewContractService creates a new ContractService
func NewContractService(
	contractRepo letting.ContractRepository,
	tenantRepo letting.TenantRepository,
	unitRepo property.UnitRepository,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		tenantRepo:   tenantRepo,
		unitRepo:     unitRepo,
		logger:       logger,
	}
}

// ChangeTenant performs a confirmed handover: the unit's open contract is
// closed, a new contract is opened and the unit points at the new tenant,
// all in one transaction. A unit without an open contract is rejected;
// first-time assignments go through the unit update.
func (s *ContractService) ChangeTenant(ctx context.Context, req ChangeTenantRequest) (*ContractResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Unit not found")
		}
		return nil, err
	}

	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Tenant not found")
		}
		return nil, err
	}

	if unit.ActiveTenantID == nil {
		return nil, shared.ErrNoOpenContract
	}
	if *unit.ActiveTenantID == req.TenantID {
		return nil, shared.NewDomainError("INVALID_STATE", "Tenant already occupies this unit")
	}

	contract, err := letting.NewRentContract(req.UnitID, req.TenantID, req.ColdRent, req.UtilityRent)
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.Handover(ctx, contract); err != nil {
		return nil, err
	}

	s.logger.Info("Tenant handover completed",
		zap.String("unit_id", req.UnitID.String()),
		zap.String("tenant_id", req.TenantID.String()),
		zap.String("contract_id", contract.ID.String()))

	resp := ToContractResponse(contract)
	return &resp, nil
}

// GetOpenByUnit returns the unit's currently open contract
func (s *ContractService) GetOpenByUnit(ctx context.Context, unitID uuid.UUID) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindOpenByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	resp := ToContractResponse(contract)
	return &resp, nil
}

// HistoryByUnit returns all contracts of a unit, newest first
func (s *ContractService) HistoryByUnit(ctx context.Context, unitID uuid.UUID) ([]ContractResponse, error) {
	if _, err := s.unitRepo.FindByID(ctx, unitID); err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.FindByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return ToContractResponses(contracts), nil
}
