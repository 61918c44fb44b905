package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/immotool/backend/internal/domain/metering"
	"github.com/immotool/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMockCounterRepository(t *testing.T) (*GormCounterRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormCounterRepository(gormDB), mock, mockDB
}

func TestGormCounterRepository_FindByNumber(t *testing.T) {
	t.Run("finds counter with readings newest first", func(t *testing.T) {
		repo, mock, mockDB := newMockCounterRepository(t)
		defer mockDB.Close()

		counterID := uuid.New()
		propertyID := uuid.New()

		counterRows := sqlmock.NewRows([]string{"id", "property_id", "unit_id", "number", "type"}).
			AddRow(counterID, propertyID, nil, "GAS-001", "gas")
		readingRows := sqlmock.NewRows([]string{"id", "counter_id", "value", "read_at"}).
			AddRow(uuid.New(), counterID, decimal.NewFromInt(1250), time.Now()).
			AddRow(uuid.New(), counterID, decimal.NewFromInt(1100), time.Now().AddDate(0, -1, 0))

		mock.ExpectQuery(`SELECT \* FROM "counters" WHERE number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("GAS-001", 1).
			WillReturnRows(counterRows)
		mock.ExpectQuery(`SELECT \* FROM "counter_readings" WHERE .*"counter_id" = \$1.* ORDER BY counter_readings.read_at DESC`).
			WithArgs(counterID).
			WillReturnRows(readingRows)

		counter, err := repo.FindByNumber(context.Background(), "GAS-001")

		assert.NoError(t, err)
		require.NotNil(t, counter)
		assert.Equal(t, "GAS-001", counter.Number)
		assert.Len(t, counter.Readings, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown number", func(t *testing.T) {
		repo, mock, mockDB := newMockCounterRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "counters" WHERE number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("MISSING", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		counter, err := repo.FindByNumber(context.Background(), "MISSING")

		assert.Nil(t, counter)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCounterRepository_FindByProperty(t *testing.T) {
	repo, mock, mockDB := newMockCounterRepository(t)
	defer mockDB.Close()

	propertyID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "property_id", "unit_id", "number", "type"}).
		AddRow(uuid.New(), propertyID, nil, "ELEC-001", "electricity").
		AddRow(uuid.New(), propertyID, nil, "WAT-007", "water")

	mock.ExpectQuery(`SELECT \* FROM "counters" WHERE property_id = \$1 ORDER BY number ASC`).
		WithArgs(propertyID).
		WillReturnRows(rows)

	counters, err := repo.FindByProperty(context.Background(), propertyID)

	assert.NoError(t, err)
	assert.Len(t, counters, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCounterRepository_AddReading(t *testing.T) {
	repo, mock, mockDB := newMockCounterRepository(t)
	defer mockDB.Close()

	counter, err := metering.NewCounter(uuid.New(), nil, "GAS-001", metering.CounterTypeGas)
	require.NoError(t, err)

	reading, err := counter.NewReading(decimal.NewFromInt(1300), time.Now())
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO "counter_readings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(reading.ID))

	err = repo.AddReading(context.Background(), reading)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
