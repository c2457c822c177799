// Package dates formats record dates relative to the current day.
package dates

import (
	"strings"
	"time"
)

const (
	readableLayout = "Monday, January 2"
	abbrevLayout   = "Mon, Jan 2"
)

// Formatter renders dates such as "Today, July 14" or "Friday".
type Formatter struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// Location is the zone "today" is measured in. Defaults to time.Local.
	Location *time.Location
}

// NewFormatter returns a Formatter using the wall clock and local zone.
func NewFormatter() Formatter {
	return Formatter{Now: time.Now, Location: time.Local}
}

func (f Formatter) now() time.Time {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

// Friendly formats a UTC-midnight record date.
//
// With showFullDate the result always carries the month and day, and the
// weekday is replaced by "Today" or "Tomorrow" where it applies. Without it,
// dates in the coming week collapse to a day name and later dates are
// abbreviated.
func (f Formatter) Friendly(date time.Time, showFullDate bool) string {
	day := calendarDay(date.UTC())
	now := f.now()
	today := calendarDay(now)
	offset := daysBetween(today, day)

	if offset == 0 || showFullDate {
		readable := day.Format(readableLayout)
		if offset < 2 {
			return strings.Replace(readable, day.Weekday().String(), dayName(day, offset), 1)
		}
		return readable
	}
	if offset < 7 {
		return dayName(day, offset)
	}
	return day.Format(abbrevLayout)
}

// dayName is "Today", "Tomorrow" or the weekday.
func dayName(day time.Time, offset int) string {
	switch offset {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	}
	return day.Weekday().String()
}

// calendarDay strips the clock and zone from t, keeping its calendar date.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
