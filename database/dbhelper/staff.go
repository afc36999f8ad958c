package dbhelper

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ray-remotestate/qrcafe/database"
	"github.com/ray-remotestate/qrcafe/models"
)

func HasOpenAttendance(staffID uuid.UUID) (bool, error) {
	var open bool
	err := database.QRCafe.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM staff_attendance
			WHERE staff_id = $1 AND check_out IS NULL
		)`, staffID).Scan(&open)
	return open, err
}

func CheckInStaff(staffID uuid.UUID) (models.StaffAttendance, error) {
	attendance := models.StaffAttendance{StaffID: staffID}
	err := database.QRCafe.QueryRow(`
		INSERT INTO staff_attendance (staff_id)
		VALUES ($1)
		RETURNING id, check_in`, staffID).
		Scan(&attendance.ID, &attendance.CheckIn)
	return attendance, err
}

// CheckOutStaff closes the open attendance record and returns sql.ErrNoRows
// if none is open.
func CheckOutStaff(staffID uuid.UUID) (models.StaffAttendance, error) {
	var attendance models.StaffAttendance
	err := database.QRCafe.QueryRow(`
		UPDATE staff_attendance
		SET check_out = now()
		WHERE staff_id = $1 AND check_out IS NULL
		RETURNING id, staff_id, check_in, check_out`, staffID).
		Scan(&attendance.ID, &attendance.StaffID, &attendance.CheckIn, &attendance.CheckOut)
	return attendance, err
}

func GetStaffAttendanceBetween(staffID uuid.UUID, start, end time.Time) ([]models.StaffAttendance, error) {
	rows, err := database.QRCafe.Query(`
		SELECT id, staff_id, check_in, check_out
		FROM staff_attendance
		WHERE staff_id = $1 AND check_in BETWEEN $2 AND $3
		ORDER BY check_in DESC`, staffID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func GetActiveStaff() ([]models.StaffAttendance, error) {
	rows, err := database.QRCafe.Query(`
		SELECT id, staff_id, check_in, check_out
		FROM staff_attendance
		WHERE check_out IS NULL
		ORDER BY check_in DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func collectAttendance(rows *sql.Rows) ([]models.StaffAttendance, error) {
	records := make([]models.StaffAttendance, 0)
	for rows.Next() {
		var attendance models.StaffAttendance
		if err := rows.Scan(&attendance.ID, &attendance.StaffID, &attendance.CheckIn, &attendance.CheckOut); err != nil {
			return nil, err
		}
		records = append(records, attendance)
	}
	return records, rows.Err()
}
