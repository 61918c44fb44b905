package handler

import (
	"github.com/gin-gonic/gin"
	lettingapp "github.com/immotool/backend/internal/application/letting"
)

// TenantHandler handles tenant-related API endpoints
type TenantHandler struct {
	BaseHandler
	tenantService   *lettingapp.TenantService
	contractService *lettingapp.ContractService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *lettingapp.TenantService, contractService *lettingapp.ContractService) *TenantHandler {
	return &TenantHandler{
		tenantService:   tenantService,
		contractService: contractService,
	}
}

// RegisterRoutes registers all tenant routes
func (h *TenantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.Create)
		tenants.GET("", h.List)
		tenants.GET("/:id", h.GetByID)
		tenants.PUT("/:id", h.Update)
		tenants.DELETE("/:id", h.Delete)
	}

	rg.POST("/contracts/change-tenant", h.ChangeTenant)
}

// Create creates a new tenant
func (h *TenantHandler) Create(c *gin.Context) {
	var req lettingapp.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tenant)
}

// GetByID retrieves a tenant by ID
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// List returns a paginated list of tenants
func (h *TenantHandler) List(c *gin.Context) {
	filter := lettingapp.TenantListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.tenantService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update updates a tenant's contact data
func (h *TenantHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	var req lettingapp.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// Delete removes a tenant
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ChangeTenant performs a confirmed tenant handover on a unit: the open
// contract is closed, a new one is opened and the unit repointed, all in
// one transaction.
func (h *TenantHandler) ChangeTenant(c *gin.Context) {
	var req lettingapp.ChangeTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	contract, err := h.contractService.ChangeTenant(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, contract)
}
