package weather

import (
	"fmt"
	"strings"
)

// Units is the measurement system used for display.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// ParseUnits accepts "metric" or "imperial" in any case. Anything else is metric.
func ParseUnits(s string) Units {
	if strings.EqualFold(strings.TrimSpace(s), string(Imperial)) {
		return Imperial
	}
	return Metric
}

// Toggle returns the other unit system.
func (u Units) Toggle() Units {
	if u == Imperial {
		return Metric
	}
	return Imperial
}

const kmhToMph = 0.621371

// Formatter renders record fields as display strings. The unit
// preference is read through Units on every call so a settings change
// applies to the next render.
type Formatter struct {
	Units func() Units
}

// NewFormatter returns a Formatter reading its preference from units.
// A nil units function means metric.
func NewFormatter(units func() Units) Formatter {
	return Formatter{Units: units}
}

func (f Formatter) units() Units {
	if f.Units == nil {
		return Metric
	}
	return f.Units()
}

// Temperature formats a Celsius value in the preferred units, e.g. "25°".
func (f Formatter) Temperature(celsius float64) string {
	t := celsius
	if f.units() == Imperial {
		t = celsius*1.8 + 32
	}
	return fmt.Sprintf("%.0f°", t)
}

// Wind formats a km/h speed and a bearing, e.g. "4 km/h E".
func (f Formatter) Wind(speed, degrees float64) string {
	dir := Compass(degrees)
	if f.units() == Imperial {
		return fmt.Sprintf("%.0f mph %s", speed*kmhToMph, dir)
	}
	return fmt.Sprintf("%.0f km/h %s", speed, dir)
}

// Humidity formats a percentage, e.g. "46%".
func Humidity(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// Pressure formats hectopascals, e.g. "1032.0 hPa".
func Pressure(hpa float64) string {
	return fmt.Sprintf("%.1f hPa", hpa)
}

// Compass buckets a bearing into one of eight compass points.
func Compass(degrees float64) string {
	switch {
	case degrees >= 337.5 || degrees < 22.5:
		return "N"
	case degrees < 67.5:
		return "NE"
	case degrees < 112.5:
		return "E"
	case degrees < 157.5:
		return "SE"
	case degrees < 202.5:
		return "S"
	case degrees < 247.5:
		return "SW"
	case degrees < 292.5:
		return "W"
	default:
		return "NW"
	}
}
