package models

import (
	"time"

	"github.com/google/uuid"
)

// StaffAttendance tracks one shift. A staff member has at most one open
// record (check_out null) at a time.
type StaffAttendance struct {
	ID       uuid.UUID  `db:"id" json:"id"`
	StaffID  uuid.UUID  `db:"staff_id" json:"staff_id"`
	CheckIn  time.Time  `db:"check_in" json:"check_in"`
	CheckOut *time.Time `db:"check_out" json:"check_out,omitempty"`
}
