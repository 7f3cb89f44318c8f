package businessdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedOffset(t *testing.T) {
	_, offset := time.Date(2025, 7, 19, 12, 0, 0, 0, Zone).Zone()
	assert.Equal(t, -5*60*60, offset)
}

func TestDayRollover(t *testing.T) {
	// 03:30 UTC is still the previous day in Peru.
	utc := time.Date(2025, 7, 19, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-18", ISODate(utc))
	assert.Equal(t, "22:30:00", TimeOfDay(utc))

	// From 05:00 UTC onward the dates agree.
	utc = time.Date(2025, 7, 19, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-19", ISODate(utc))
	assert.Equal(t, "00:00:00", TimeOfDay(utc))
}

func TestMonthAndYearRollover(t *testing.T) {
	utc := time.Date(2026, 1, 1, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-12-31", ISODate(utc))
	assert.Equal(t, "31/12/2025", FormatDMY(utc))
}

func TestTruncate(t *testing.T) {
	utc := time.Date(2025, 7, 19, 17, 45, 12, 0, time.UTC)
	got := Truncate(utc)
	assert.Equal(t, "2025-07-19", got.Format("2006-01-02"))
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, Zone, got.Location())
}

func TestParseISO(t *testing.T) {
	d, err := ParseISO("2025-07-19")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-19", ISODate(d))

	_, err = ParseISO("19/07/2025")
	assert.Error(t, err)
}
