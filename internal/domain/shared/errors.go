package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")

	// ErrTenantChangeRequired is returned when a unit update would replace an
	// existing occupant. The client must confirm the handover explicitly via
	// the change-tenant operation.
	ErrTenantChangeRequired = NewDomainError("TENANT_CHANGE_REQUIRED", "Unit is already occupied, confirm the tenant change to proceed")

	// ErrNoOpenContract is returned when a tenant change is requested for a
	// unit that has no open rent contract to close. First-time assignments go
	// through the unit update instead.
	ErrNoOpenContract = NewDomainError("NO_OPEN_CONTRACT", "Unit has no open rent contract to close")
)
