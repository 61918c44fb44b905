package handler

import (
	"github.com/gin-gonic/gin"
	propertyapp "github.com/immotool/backend/internal/application/property"
)

// PropertyHandler handles property-related API endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *propertyapp.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *propertyapp.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// RegisterRoutes registers all property routes
func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	properties := rg.Group("/properties")
	{
		properties.POST("", h.Create)
		properties.GET("", h.List)
		properties.GET("/:id", h.GetByID)
		properties.DELETE("/:id", h.Delete)
		properties.PUT("/:id/expenses", h.UpdateExpenses)
	}
}

// Create creates a property together with its numbered units. Unit 1..U
// are seeded as normal units, U+1..U+C as commercial ones.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req propertyapp.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, property)
}

// GetByID retrieves a property with its units and counters
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	property, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// List returns a paginated list of properties
func (h *PropertyHandler) List(c *gin.Context) {
	filter := propertyapp.PropertyListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.propertyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Delete removes a property; its units and counters cascade
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// UpdateExpenses sets the operating expense rates of a property
func (h *PropertyHandler) UpdateExpenses(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	var req propertyapp.UpdateExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	property, err := h.propertyService.UpdateExpenses(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}
