package letting

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/shared"
)

// Name columns are capped at 30 characters
const maxNameLength = 30

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Tenant represents a renter. Contact data is optional, names are not.
type Tenant struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	Mobile    string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTenant creates a new tenant
func NewTenant(firstName, lastName string) (*Tenant, error) {
	if err := validateName(firstName, "INVALID_FIRST_NAME", "First name"); err != nil {
		return nil, err
	}
	if err := validateName(lastName, "INVALID_LAST_NAME", "Last name"); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Tenant{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetName updates the tenant's name
func (t *Tenant) SetName(firstName, lastName string) error {
	if err := validateName(firstName, "INVALID_FIRST_NAME", "First name"); err != nil {
		return err
	}
	if err := validateName(lastName, "INVALID_LAST_NAME", "Last name"); err != nil {
		return err
	}
	t.FirstName = strings.TrimSpace(firstName)
	t.LastName = strings.TrimSpace(lastName)
	t.UpdatedAt = time.Now()
	return nil
}

// SetContact updates phone, mobile and email
func (t *Tenant) SetContact(phone, mobile, email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	t.Phone = strings.TrimSpace(phone)
	t.Mobile = strings.TrimSpace(mobile)
	t.Email = strings.ToLower(email)
	t.UpdatedAt = time.Now()
	return nil
}

// FullName returns the display name of the tenant
func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

func validateName(name, code, field string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(code, field+" cannot be empty")
	}
	if len(name) > maxNameLength {
		return shared.NewDomainError(code, field+" cannot exceed 30 characters")
	}
	return nil
}
