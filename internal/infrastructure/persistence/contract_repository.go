package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/letting"
	"github.com/immotool/backend/internal/domain/property"
	"github.com/immotool/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormContractRepository implements letting.ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a rent contract by its ID
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*letting.RentContract, error) {
	var contract letting.RentContract
	if err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// FindOpenByUnit finds the open contract of a unit. A contract is open as
// long as its moved_out date has not been set.
func (r *GormContractRepository) FindOpenByUnit(ctx context.Context, unitID uuid.UUID) (*letting.RentContract, error) {
	var contract letting.RentContract
	if err := r.db.WithContext(ctx).
		Where("unit_id = ? AND moved_out IS NULL", unitID).
		First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// FindByUnit returns the full contract history of a unit, newest first
func (r *GormContractRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]letting.RentContract, error) {
	var contracts []letting.RentContract
	if err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("moved_in DESC").
		Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// Save creates or updates a rent contract
func (r *GormContractRepository) Save(ctx context.Context, contract *letting.RentContract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

// Assign inserts the contract for a vacant unit and points the unit's
// active tenant at the occupant, in one transaction.
func (r *GormContractRepository) Assign(ctx context.Context, contract *letting.RentContract) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contract).Error; err != nil {
			return err
		}
		return repointUnit(tx, contract)
	})
}

// Handover closes the unit's open contract, inserts the new contract and
// repoints the unit's active tenant, all in one transaction. The previous
// tenant's move-out date is set to the new contract's move-in date so the
// history stays gapless. Fails when the unit has no open contract.
func (r *GormContractRepository) Handover(ctx context.Context, contract *letting.RentContract) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&letting.RentContract{}).
			Where("unit_id = ? AND moved_out IS NULL", contract.UnitID).
			Updates(map[string]interface{}{
				"moved_out":  contract.MovedIn,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNoOpenContract
		}

		if err := tx.Create(contract).Error; err != nil {
			return err
		}
		return repointUnit(tx, contract)
	})
}

func repointUnit(tx *gorm.DB, contract *letting.RentContract) error {
	return tx.Model(&property.Unit{}).
		Where("id = ?", contract.UnitID).
		Updates(map[string]interface{}{
			"active_tenant_id": contract.TenantID,
			"updated_at":       time.Now(),
		}).Error
}

// Ensure GormContractRepository implements letting.ContractRepository
var _ letting.ContractRepository = (*GormContractRepository)(nil)
