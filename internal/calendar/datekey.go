package calendar

import (
	"fmt"
	"time"

	"github.com/makyelver-commits/eventor/internal/apperr"
)

// DateKey is the canonical YYYY-MM-DD form of a local calendar date.
// Keys are built from the date's own year/month/day fields, never via
// UTC conversion, so a date picked in local time round-trips without
// shifting a day across timezones.

// ToDateKey formats a local date as YYYY-MM-DD.
func ToDateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// FromDateKey parses YYYY-MM-DD into a local midnight date by explicit
// year/month/day construction. A generic layout parse would interpret
// the string as UTC and can land on the previous or next local day.
func FromDateKey(key string) (time.Time, error) {
	var year, month, day int
	if _, err := fmt.Sscanf(key, "%4d-%2d-%2d", &year, &month, &day); err != nil {
		return time.Time{}, apperr.New(apperr.Validation, "invalid date format. Use YYYY-MM-DD")
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, apperr.New(apperr.Validation, "invalid date format. Use YYYY-MM-DD")
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject that here.
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, apperr.New(apperr.Validation, "invalid calendar date")
	}
	return d, nil
}

// SameDay reports whether two times fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
