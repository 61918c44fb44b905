package letting

import (
	"strings"
	"testing"

	"github.com/immotool/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestNewTenant(t *testing.T) {
	tenant, err := NewTenant("Erika", "Mustermann")
	require.NoError(t, err)

	assert.Equal(t, "Erika", tenant.FirstName)
	assert.Equal(t, "Mustermann", tenant.LastName)
	assert.Equal(t, "Erika Mustermann", tenant.FullName())
	assert.Empty(t, tenant.Email)
}

func TestNewTenant_Validation(t *testing.T) {
	_, err := NewTenant("", "Mustermann")
	assertDomainErrorCode(t, err, "INVALID_FIRST_NAME")

	_, err = NewTenant("Erika", "  ")
	assertDomainErrorCode(t, err, "INVALID_LAST_NAME")

	_, err = NewTenant("Erika", strings.Repeat("m", 31))
	assertDomainErrorCode(t, err, "INVALID_LAST_NAME")

	_, err = NewTenant(strings.Repeat("e", 30), "Mustermann")
	assert.NoError(t, err)
}

func TestTenant_SetContact(t *testing.T) {
	tenant, err := NewTenant("Erika", "Mustermann")
	require.NoError(t, err)

	require.NoError(t, tenant.SetContact("089 123456", "0170 987654", "Erika@Example.com"))
	assert.Equal(t, "089 123456", tenant.Phone)
	assert.Equal(t, "erika@example.com", tenant.Email)

	err = tenant.SetContact("", "", "not-an-email")
	assertDomainErrorCode(t, err, "INVALID_EMAIL")
}
