// Package weather holds the weather record model and the formatting helpers
// used to present it: condition descriptions, icons, temperature and wind.
package weather

import "time"

// Column names in the weather table.
const (
	ColumnDate      = "date"
	ColumnMaxTemp   = "max"
	ColumnMinTemp   = "min"
	ColumnHumidity  = "humidity"
	ColumnPressure  = "pressure"
	ColumnWindSpeed = "wind"
	ColumnDegrees   = "degrees"
	ColumnWeatherID = "weather_id"
)

// DetailProjection is the ordered set of columns the detail screen requests.
var DetailProjection = []string{
	ColumnDate,
	ColumnMaxTemp,
	ColumnMinTemp,
	ColumnHumidity,
	ColumnPressure,
	ColumnWindSpeed,
	ColumnDegrees,
	ColumnWeatherID,
}

// Record is one day of weather. Temperatures are Celsius, humidity is a
// percentage, pressure is hPa, wind speed is km/h and direction is degrees.
type Record struct {
	Date          time.Time // UTC midnight
	MaxTemp       float64
	MinTemp       float64
	Humidity      float64
	Pressure      float64
	WindSpeed     float64
	WindDirection float64
	WeatherID     int
}

// NormalizeDate truncates t to midnight UTC of its UTC calendar day.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
