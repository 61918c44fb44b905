package handler

import (
	"github.com/gin-gonic/gin"
	meteringapp "github.com/immotool/backend/internal/application/metering"
)

// CounterHandler handles meter counter API endpoints
type CounterHandler struct {
	BaseHandler
	counterService *meteringapp.CounterService
}

// NewCounterHandler creates a new CounterHandler
func NewCounterHandler(counterService *meteringapp.CounterService) *CounterHandler {
	return &CounterHandler{
		counterService: counterService,
	}
}

// RegisterRoutes registers all counter routes
func (h *CounterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	counters := rg.Group("/counters")
	{
		counters.POST("", h.Create)
		counters.GET("/:number", h.GetByNumber)
		counters.POST("/:number/readings", h.AddReading)
	}

	rg.GET("/properties/:id/counters", h.ListByProperty)
}

// Create registers a counter for a property, optionally bound to a unit.
// Counter numbers are unique across the whole stock.
func (h *CounterHandler) Create(c *gin.Context) {
	var req meteringapp.CreateCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	counter, err := h.counterService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, counter)
}

// GetByNumber retrieves a counter and its readings by counter number
func (h *CounterHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Counter number is required")
		return
	}

	counter, err := h.counterService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, counter)
}

// AddReading appends a meter reading to an existing counter
func (h *CounterHandler) AddReading(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Counter number is required")
		return
	}

	var req meteringapp.AddReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	reading, err := h.counterService.AddReading(c.Request.Context(), number, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, reading)
}

// ListByProperty lists the counters installed at a property
func (h *CounterHandler) ListByProperty(c *gin.Context) {
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	counters, err := h.counterService.ListByProperty(c.Request.Context(), propertyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, counters)
}
