package detail

import (
	"fmt"
	"time"

	"github.com/abelbrown/sunshine/internal/weather"
)

// SlotID names a display slot. The prefix is the panel it lives in.
type SlotID string

const (
	SlotIcon          SlotID = "primary.weather_icon"
	SlotDate          SlotID = "primary.date"
	SlotDescription   SlotID = "primary.weather_description"
	SlotHigh          SlotID = "primary.high_temperature"
	SlotLow           SlotID = "primary.low_temperature"
	SlotHumidity      SlotID = "extra.humidity"
	SlotHumidityLabel SlotID = "extra.humidity_label"
	SlotPressure      SlotID = "extra.pressure"
	SlotPressureLabel SlotID = "extra.pressure_label"
	SlotWind          SlotID = "extra.wind_measurement"
	SlotWindLabel     SlotID = "extra.wind_label"
)

// Slot is one on-screen field and its accessibility description.
type Slot struct {
	Value string
	A11y  string
	Icon  weather.Icon // set on SlotIcon only
}

// DisplayState is everything the screen shows for one record.
// It is replaced as a whole on every successful load.
type DisplayState struct {
	Slots map[SlotID]Slot
}

// Slot returns the slot for id and whether it has been set.
func (d DisplayState) Slot(id SlotID) (Slot, bool) {
	s, ok := d.Slots[id]
	return s, ok
}

// Empty reports whether nothing has been rendered yet.
func (d DisplayState) Empty() bool {
	return len(d.Slots) == 0
}

// Accessibility templates, one per displayed value.
const (
	a11yForecast = "Forecast: %s"
	a11yHigh     = "High: %s"
	a11yLow      = "Low: %s"
	a11yHumidity = "Humidity: %s"
	a11yPressure = "Pressure: %s"
	a11yWind     = "Wind: %s"
)

// Labels shown beside the extra details.
const (
	labelHumidity = "Humidity"
	labelPressure = "Pressure"
	labelWind     = "Wind"
)

// DateFormatter formats a record date. The detail screen always asks for
// the full date.
type DateFormatter interface {
	Friendly(date time.Time, showFullDate bool) string
}

// UnitFormatter formats temperatures and wind in the user's preferred
// units. It reads the preference itself.
type UnitFormatter interface {
	Temperature(celsius float64) string
	Wind(speed, degrees float64) string
}

// Formatters groups the collaborators used to turn a record into text.
type Formatters struct {
	Icon     func(weatherID int) weather.Icon
	Describe func(weatherID int) string
	Dates    DateFormatter
	Units    UnitFormatter
}

// render derives the display state and forecast summary for rec.
func (f Formatters) render(rec weather.Record) (DisplayState, string) {
	slots := make(map[SlotID]Slot, 11)

	icon := f.Icon(rec.WeatherID)

	date := f.Dates.Friendly(rec.Date, true)
	slots[SlotDate] = Slot{Value: date, A11y: date}

	description := f.Describe(rec.WeatherID)
	descriptionA11y := fmt.Sprintf(a11yForecast, description)
	slots[SlotDescription] = Slot{Value: description, A11y: descriptionA11y}
	slots[SlotIcon] = Slot{Value: icon.String(), A11y: descriptionA11y, Icon: icon}

	high := f.Units.Temperature(rec.MaxTemp)
	slots[SlotHigh] = Slot{Value: high, A11y: fmt.Sprintf(a11yHigh, high)}

	low := f.Units.Temperature(rec.MinTemp)
	slots[SlotLow] = Slot{Value: low, A11y: fmt.Sprintf(a11yLow, low)}

	humidity := weather.Humidity(rec.Humidity)
	humidityA11y := fmt.Sprintf(a11yHumidity, humidity)
	slots[SlotHumidity] = Slot{Value: humidity, A11y: humidityA11y}
	slots[SlotHumidityLabel] = Slot{Value: labelHumidity, A11y: humidityA11y}

	wind := f.Units.Wind(rec.WindSpeed, rec.WindDirection)
	windA11y := fmt.Sprintf(a11yWind, wind)
	slots[SlotWind] = Slot{Value: wind, A11y: windA11y}
	slots[SlotWindLabel] = Slot{Value: labelWind, A11y: windA11y}

	pressure := weather.Pressure(rec.Pressure)
	pressureA11y := fmt.Sprintf(a11yPressure, pressure)
	slots[SlotPressure] = Slot{Value: pressure, A11y: pressureA11y}
	slots[SlotPressureLabel] = Slot{Value: labelPressure, A11y: pressureA11y}

	summary := fmt.Sprintf("%s - %s -%s%s", date, description, high, low)
	return DisplayState{Slots: slots}, summary
}
