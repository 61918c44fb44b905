package letting

import (
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/letting"
	"github.com/shopspring/decimal"
)

// CreateTenantRequest represents a request to create a tenant
type CreateTenantRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=30"`
	LastName  string `json:"last_name" binding:"required,min=1,max=30"`
	Phone     string `json:"phone" binding:"max=50"`
	Mobile    string `json:"mobile" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
}

// UpdateTenantRequest represents a request to update a tenant
type UpdateTenantRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=30"`
	LastName  string `json:"last_name" binding:"required,min=1,max=30"`
	Phone     string `json:"phone" binding:"max=50"`
	Mobile    string `json:"mobile" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
}

// ChangeTenantRequest confirms a tenant handover on a unit
type ChangeTenantRequest struct {
	UnitID      uuid.UUID       `json:"unit_id" binding:"required"`
	TenantID    uuid.UUID       `json:"tenant_id" binding:"required"`
	ColdRent    decimal.Decimal `json:"cold_rent"`
	UtilityRent decimal.Decimal `json:"utility_rent"`
}

// TenantListFilter represents filter options for the tenant list
type TenantListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	Mobile    string    `json:"mobile,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContractResponse represents a rent contract in API responses
type ContractResponse struct {
	ID          uuid.UUID       `json:"id"`
	UnitID      uuid.UUID       `json:"unit_id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	ColdRent    decimal.Decimal `json:"cold_rent"`
	UtilityRent decimal.Decimal `json:"utility_rent"`
	MovedIn     time.Time       `json:"moved_in"`
	MovedOut    *time.Time      `json:"moved_out,omitempty"`
	Open        bool            `json:"open"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToTenantResponse converts a domain Tenant to TenantResponse
func ToTenantResponse(t *letting.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Phone:     t.Phone,
		Mobile:    t.Mobile,
		Email:     t.Email,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTenantResponses converts a slice of domain Tenants
func ToTenantResponses(tenants []letting.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i, t := range tenants {
		responses[i] = ToTenantResponse(&t)
	}
	return responses
}

// ToContractResponse converts a domain RentContract to ContractResponse
func ToContractResponse(c *letting.RentContract) ContractResponse {
	return ContractResponse{
		ID:          c.ID,
		UnitID:      c.UnitID,
		TenantID:    c.TenantID,
		ColdRent:    c.ColdRent,
		UtilityRent: c.UtilityRent,
		MovedIn:     c.MovedIn,
		MovedOut:    c.MovedOut,
		Open:        c.IsOpen(),
		CreatedAt:   c.CreatedAt,
	}
}

// ToContractResponses converts a slice of domain RentContracts
func ToContractResponses(contracts []letting.RentContract) []ContractResponse {
	responses := make([]ContractResponse, len(contracts))
	for i, c := range contracts {
		responses[i] = ToContractResponse(&c)
	}
	return responses
}
