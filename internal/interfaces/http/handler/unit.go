package handler

import (
	"github.com/gin-gonic/gin"
	lettingapp "github.com/immotool/backend/internal/application/letting"
	propertyapp "github.com/immotool/backend/internal/application/property"
)

// UnitHandler handles unit-related API endpoints
type UnitHandler struct {
	BaseHandler
	unitService     *propertyapp.UnitService
	contractService *lettingapp.ContractService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService *propertyapp.UnitService, contractService *lettingapp.ContractService) *UnitHandler {
	return &UnitHandler{
		unitService:     unitService,
		contractService: contractService,
	}
}

// RegisterRoutes registers all unit routes
func (h *UnitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	units := rg.Group("/units")
	{
		units.GET("/:id", h.GetByID)
		units.PUT("/:id", h.Update)
		units.GET("/:id/contract", h.GetOpenContract)
		units.GET("/:id/contracts", h.ContractHistory)
	}

	rg.GET("/properties/:id/units", h.ListByProperty)
}

// GetByID retrieves a single unit
func (h *UnitHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	unit, err := h.unitService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// ListByProperty lists the units of a property in ascending number order
func (h *UnitHandler) ListByProperty(c *gin.Context) {
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	units, err := h.unitService.ListByProperty(c.Request.Context(), propertyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, units)
}

// Update updates a unit. Assigning a tenant to an occupied unit is
// rejected until the handover is confirmed via the change-tenant route.
func (h *UnitHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	var req propertyapp.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	unit, err := h.unitService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// GetOpenContract retrieves the unit's currently open rent contract
func (h *UnitHandler) GetOpenContract(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	contract, err := h.contractService.GetOpenByUnit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contract)
}

// ContractHistory lists the unit's rent contracts, newest first
func (h *UnitHandler) ContractHistory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	contracts, err := h.contractService.HistoryByUnit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contracts)
}
