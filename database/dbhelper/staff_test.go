package dbhelper

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasOpenAttendance(t *testing.T) {
	mock := newMockDB(t)
	staffID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(staffID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	open, err := HasOpenAttendance(staffID)
	require.NoError(t, err)
	assert.True(t, open)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckInStaff(t *testing.T) {
	mock := newMockDB(t)
	staffID := uuid.New()
	attendanceID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO staff_attendance").
		WithArgs(staffID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "check_in"}).AddRow(attendanceID.String(), now))

	attendance, err := CheckInStaff(staffID)
	require.NoError(t, err)
	assert.Equal(t, attendanceID, attendance.ID)
	assert.Equal(t, staffID, attendance.StaffID)
	assert.Nil(t, attendance.CheckOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckOutStaffNoOpenRecord(t *testing.T) {
	mock := newMockDB(t)
	staffID := uuid.New()

	mock.ExpectQuery("UPDATE staff_attendance").
		WithArgs(staffID).
		WillReturnError(sql.ErrNoRows)

	_, err := CheckOutStaff(staffID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckOutStaffClosesOpenRecord(t *testing.T) {
	mock := newMockDB(t)
	staffID := uuid.New()
	attendanceID := uuid.New()
	checkIn := time.Now().Add(-4 * time.Hour)
	checkOut := time.Now()

	mock.ExpectQuery("UPDATE staff_attendance").
		WithArgs(staffID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "staff_id", "check_in", "check_out"}).
			AddRow(attendanceID.String(), staffID.String(), checkIn, checkOut))

	attendance, err := CheckOutStaff(staffID)
	require.NoError(t, err)
	require.NotNil(t, attendance.CheckOut)
	assert.True(t, attendance.CheckOut.After(attendance.CheckIn))
	assert.NoError(t, mock.ExpectationsWereMet())
}
