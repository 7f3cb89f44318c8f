// Package businessdate derives the station's business date and time in
// Peru local time. Peru has no daylight saving, so a fixed UTC-5 offset is
// correct year-round; deriving from the wall clock (instead of a pinned
// date) also handles the day rollover that happens between 00:00 and
// 05:00 UTC.
package businessdate

import "time"

// Zone is Peru time (PET), fixed at UTC-5.
var Zone = time.FixedZone("PET", -5*60*60)

// Now returns the current instant in Peru local time.
func Now() time.Time {
	return time.Now().In(Zone)
}

// At converts an arbitrary instant to Peru local time.
func At(t time.Time) time.Time {
	return t.In(Zone)
}

// Today returns the current business date truncated to midnight PET.
func Today() time.Time {
	return Truncate(Now())
}

// Truncate drops the time-of-day portion, keeping the PET calendar date.
func Truncate(t time.Time) time.Time {
	t = t.In(Zone)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Zone)
}

// ISODate formats an instant's PET calendar date as YYYY-MM-DD, the format
// sales records are tagged with.
func ISODate(t time.Time) string {
	return t.In(Zone).Format("2006-01-02")
}

// TimeOfDay formats an instant's PET wall clock as HH:MM:SS.
func TimeOfDay(t time.Time) string {
	return t.In(Zone).Format("15:04:05")
}

// FormatDMY renders a PET calendar date as DD/MM/YYYY for display.
func FormatDMY(t time.Time) string {
	return t.In(Zone).Format("02/01/2006")
}

// ParseISO parses a YYYY-MM-DD business date into midnight PET.
func ParseISO(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Zone)
}
