package letting

import (
	"context"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/letting"
	"github.com/immotool/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TenantService handles tenant master data
type TenantService struct {
	tenantRepo letting.TenantRepository
	logger     *zap.Logger
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo letting.TenantRepository, logger *zap.Logger) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// Create creates a new tenant
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	tenant, err := letting.NewTenant(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	if err := tenant.SetContact(req.Phone, req.Mobile, req.Email); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	s.logger.Info("Tenant created",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("name", tenant.FullName()))

	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// GetByID loads a single tenant
func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// List returns a paginated tenant list
func (s *TenantService) List(ctx context.Context, filter TenantListFilter) (*shared.Paginated[TenantResponse], error) {
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

	tenants, err := s.tenantRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.tenantRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToTenantResponses(tenants), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update changes a tenant's name and contact data
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tenant.SetName(req.FirstName, req.LastName); err != nil {
		return nil, err
	}
	if err := tenant.SetContact(req.Phone, req.Mobile, req.Email); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// Delete removes a tenant
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tenantRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.tenantRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Tenant deleted", zap.String("tenant_id", id.String()))
	return nil
}
