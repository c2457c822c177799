package weather

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Authority is the content authority used in canonical locators.
const Authority = "com.example.android.sunshine"

// PathWeather is the path segment under which weather records live.
const PathWeather = "weather"

var (
	// ErrMissingLocator is returned when no locator was supplied.
	ErrMissingLocator = errors.New("locator for detail screen can not be empty")
	// ErrBadLocator is returned for text that does not name a weather record.
	ErrBadLocator = errors.New("not a weather locator")
)

// Locator identifies a single weather record by its normalized date.
// The zero value is the missing locator.
type Locator struct {
	date time.Time
}

// LocatorForDate returns the locator of the record for date's UTC day.
func LocatorForDate(date time.Time) Locator {
	return Locator{date: NormalizeDate(date)}
}

// ParseLocator accepts content://<authority>/weather/<millis>,
// weather/<millis>, or a YYYY-MM-DD calendar date.
func ParseLocator(s string) (Locator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Locator{}, ErrMissingLocator
	}

	if d, err := time.Parse("2006-01-02", s); err == nil {
		return LocatorForDate(d), nil
	}

	path := s
	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return Locator{}, fmt.Errorf("%w: %q: %v", ErrBadLocator, s, err)
		}
		if u.Scheme != "content" || u.Host != Authority {
			return Locator{}, fmt.Errorf("%w: %q", ErrBadLocator, s)
		}
		path = u.Path
	}

	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(segs) != 2 || segs[0] != PathWeather {
		return Locator{}, fmt.Errorf("%w: %q", ErrBadLocator, s)
	}
	millis, err := strconv.ParseInt(segs[1], 10, 64)
	if err != nil {
		return Locator{}, fmt.Errorf("%w: %q: bad date segment", ErrBadLocator, s)
	}
	return LocatorForDate(time.UnixMilli(millis)), nil
}

// IsZero reports whether l is the missing locator.
func (l Locator) IsZero() bool {
	return l.date.IsZero()
}

// Date returns the UTC midnight the locator points at.
func (l Locator) Date() time.Time {
	return l.date
}

// String returns the canonical content:// form.
func (l Locator) String() string {
	if l.IsZero() {
		return ""
	}
	return fmt.Sprintf("content://%s/%s/%d", Authority, PathWeather, l.date.UnixMilli())
}
