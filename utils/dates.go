package utils

import (
	"time"
)

// Analytics windows are always computed on the UTC calendar so results do not
// shift with the caller's timezone.

// DayBoundsUTC returns the first and last instant of the UTC calendar day
// containing the given time.
func DayBoundsUTC(t time.Time) (time.Time, time.Time) {
	d := t.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// MonthBoundsUTC returns the first and last instant of the UTC month. The end
// is derived from the first day of the following month, so 28–31 day months
// and leap-year February come out of the calendar arithmetic itself.
func MonthBoundsUTC(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)
	return start, end
}

// RangeBoundsUTC widens [startDate, endDate] to whole UTC days: start of the
// first day through the last instant of the last day.
func RangeBoundsUTC(startDate, endDate time.Time) (time.Time, time.Time) {
	start, _ := DayBoundsUTC(startDate)
	_, end := DayBoundsUTC(endDate)
	return start, end
}

// ParseDate accepts a plain date (2006-01-02) or an RFC 3339 timestamp. Plain
// dates are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
