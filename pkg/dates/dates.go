// Package dates centralizes the calendar-date and time-of-day formats used
// across the MoM API. The service trades in whole days (due dates, meeting
// dates) and wall-clock times without a date component, so everything is
// normalized to UTC midnight internally.
package dates

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DayFormat is the wire format for calendar dates.
const DayFormat = "2006-01-02"

// ClockFormat is the wire format for meeting start/end times.
const ClockFormat = "15:04"

// Today returns the current calendar date in UTC.
func Today() datatypes.Date {
	return Truncate(time.Now().UTC())
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// Parse parses a YYYY-MM-DD string into a Date.
func Parse(s string) (datatypes.Date, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return datatypes.Date(t), nil
}

// Format renders a Date as YYYY-MM-DD.
func Format(d datatypes.Date) string {
	return time.Time(d).Format(DayFormat)
}

// FormatPtr renders an optional Date, returning nil for nil.
func FormatPtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := Format(*d)
	return &s
}

// AddDays returns the date shifted by the given number of days.
func AddDays(d datatypes.Date, days int) datatypes.Date {
	return datatypes.Date(time.Time(d).AddDate(0, 0, days))
}

// Before reports whether a is strictly earlier than b.
func Before(a, b datatypes.Date) bool {
	return time.Time(a).Before(time.Time(b))
}

// After reports whether a is strictly later than b.
func After(a, b datatypes.Date) bool {
	return time.Time(a).After(time.Time(b))
}

// Equal reports whether two dates fall on the same day.
func Equal(a, b datatypes.Date) bool {
	return time.Time(a).Equal(time.Time(b))
}

// ParseClock parses an HH:MM string into a time-of-day value.
func ParseClock(s string) (datatypes.Time, error) {
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return datatypes.Time(0), fmt.Errorf("invalid time %q: %w", s, err)
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), 0, 0), nil
}

// FormatClock renders a time-of-day value as HH:MM.
func FormatClock(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
