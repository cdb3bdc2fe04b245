package store

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// A helper function to create a mock database connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock
}

// Any is a helper for sqlmock to match any argument.
type Any struct{}

// Match satisfies the sqlmock.Argument interface
func (a Any) Match(v driver.Value) bool {
	return true
}

func TestActiveSlotTaken(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		count    int64
		expected bool
	}{
		{name: "Slot is free", count: 0, expected: false},
		{name: "Slot is held by an active booking", count: 1, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, mock := newMockDB(t)
			s := NewGormStore(gormDB)

			mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
				WithArgs("futsal", Any{}, "10:00", "pending", "approved").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tc.count))

			taken, err := s.ActiveSlotTaken(context.Background(), "futsal", date, "10:00")
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, taken)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateBookingConflictRollsBack(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	booking, err := s.CreateBooking(context.Background(), 7, "futsal", date, "10:00")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, booking)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBookingNotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectExec(`DELETE FROM "bookings"`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteBooking(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
