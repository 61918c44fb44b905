package identity

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

func TestNewUser(t *testing.T) {
	user, err := NewUser("Hausmeister", "admin@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "hausmeister", user.Username)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.True(t, user.Active)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantCode string
	}{
		{"empty username", "", "a@b.de", "secret123", "INVALID_USERNAME"},
		{"short username", "ab", "a@b.de", "secret123", "INVALID_USERNAME"},
		{"bad characters", "user name", "a@b.de", "secret123", "INVALID_USERNAME"},
		{"empty email", "admin", "", "secret123", "INVALID_EMAIL"},
		{"bad email", "admin", "not-an-email", "secret123", "INVALID_EMAIL"},
		{"short password", "admin", "a@b.de", "abc1", "INVALID_PASSWORD"},
		{"no number", "admin", "a@b.de", "secretsecret", "INVALID_PASSWORD"},
		{"no letter", "admin", "a@b.de", "12345678", "INVALID_PASSWORD"},
		{"too long password", "admin", "a@b.de", strings.Repeat("a1", 65), "INVALID_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.email, tt.password)
			require.Error(t, err)
			assertDomainErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("admin", "a@b.de", "secret123")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("secret123"))
	assert.False(t, user.VerifyPassword("wrong"))
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewUser("admin", "a@b.de", "secret123")
	require.NoError(t, err)

	err = user.ChangePassword("wrong", "newsecret1")
	assertDomainErrorCode(t, err, "INVALID_PASSWORD")

	require.NoError(t, user.ChangePassword("secret123", "newsecret1"))
	assert.True(t, user.VerifyPassword("newsecret1"))
	assert.False(t, user.VerifyPassword("secret123"))
}

func TestUser_Deactivate(t *testing.T) {
	user, err := NewUser("admin", "a@b.de", "secret123")
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())
	assert.False(t, user.Active)

	err = user.Deactivate()
	assertDomainErrorCode(t, err, "ALREADY_DEACTIVATED")
}
