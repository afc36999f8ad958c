package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBoundsUTC(t *testing.T) {
	start, end := DayBoundsUTC(time.Date(2024, 3, 15, 13, 42, 7, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999000000, time.UTC), end)
}

func TestDayBoundsUTCIsTimezoneInvariant(t *testing.T) {
	// midnight March 1 at +05:00 is still Feb 29 in UTC
	offset := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2024, 3, 1, 0, 0, 0, 0, offset)

	start, end := DayBoundsUTC(local)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC), end)

	// the same instant expressed in any zone yields the same window
	sameInstantUTC := local.UTC()
	start2, end2 := DayBoundsUTC(sameInstantUTC)
	assert.Equal(t, start, start2)
	assert.Equal(t, end, end2)
}

func TestMonthBoundsUTCLeapYear(t *testing.T) {
	start, end := MonthBoundsUTC(2024, 2)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC), end)

	feb29 := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	mar1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, feb29.Before(start) || feb29.After(end))
	assert.True(t, mar1.After(end))
}

func TestMonthBoundsUTCNonLeapYear(t *testing.T) {
	_, end := MonthBoundsUTC(2023, 2)
	assert.Equal(t, time.Date(2023, 2, 28, 23, 59, 59, 999000000, time.UTC), end)
}

func TestMonthBoundsUTCDecemberRollsIntoNextYear(t *testing.T) {
	start, end := MonthBoundsUTC(2024, 12)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 999000000, time.UTC), end)
}

func TestRangeBoundsUTC(t *testing.T) {
	start, end := RangeBoundsUTC(
		time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 5, 3, 23, 59, 59, 999000000, time.UTC), end)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	ts, err := ParseDate("2024-02-29T10:15:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 10, 15, 0, 0, time.UTC), ts)

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}
