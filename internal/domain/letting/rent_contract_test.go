package letting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestContract(t *testing.T) *RentContract {
	c, err := NewRentContract(uuid.New(), uuid.New(), decimal.NewFromInt(850), decimal.NewFromInt(220))
	require.NoError(t, err)
	return c
}

func TestNewRentContract(t *testing.T) {
	c := createTestContract(t)

	assert.True(t, c.IsOpen())
	assert.Nil(t, c.MovedOut)
	assert.False(t, c.MovedIn.IsZero())
	assert.True(t, c.ColdRent.Equal(decimal.NewFromInt(850)))
}

func TestNewRentContract_Validation(t *testing.T) {
	_, err := NewRentContract(uuid.Nil, uuid.New(), decimal.Zero, decimal.Zero)
	assertDomainErrorCode(t, err, "INVALID_UNIT_ID")

	_, err = NewRentContract(uuid.New(), uuid.Nil, decimal.Zero, decimal.Zero)
	assertDomainErrorCode(t, err, "INVALID_TENANT_ID")

	_, err = NewRentContract(uuid.New(), uuid.New(), decimal.NewFromInt(-1), decimal.Zero)
	assertDomainErrorCode(t, err, "INVALID_RENT")
}

func TestRentContract_Close(t *testing.T) {
	c := createTestContract(t)

	movedOut := time.Now().Add(time.Hour)
	require.NoError(t, c.Close(movedOut))
	assert.False(t, c.IsOpen())
	assert.Equal(t, movedOut, *c.MovedOut)

	// Closing twice is rejected
	err := c.Close(movedOut.Add(time.Hour))
	assertDomainErrorCode(t, err, "CONTRACT_CLOSED")
}

func TestRentContract_Close_BeforeMoveIn(t *testing.T) {
	c := createTestContract(t)

	err := c.Close(c.MovedIn.Add(-24 * time.Hour))
	assertDomainErrorCode(t, err, "INVALID_MOVED_OUT")
}

func TestRentContract_SetRents(t *testing.T) {
	c := createTestContract(t)

	require.NoError(t, c.SetRents(decimal.NewFromInt(900), decimal.NewFromInt(240)))
	assert.True(t, c.ColdRent.Equal(decimal.NewFromInt(900)))

	err := c.SetRents(decimal.NewFromInt(-1), decimal.Zero)
	assertDomainErrorCode(t, err, "INVALID_RENT")

	require.NoError(t, c.Close(time.Now()))
	err = c.SetRents(decimal.NewFromInt(950), decimal.NewFromInt(240))
	assertDomainErrorCode(t, err, "CONTRACT_CLOSED")
}
