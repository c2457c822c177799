package weather

import (
	"fmt"

	"github.com/abelbrown/sunshine/internal/logging"
)

// Icon selects the artwork shown for a weather condition.
type Icon int

const (
	IconClear Icon = iota
	IconLightClouds
	IconClouds
	IconLightRain
	IconRain
	IconSnow
	IconFog
	IconStorm
)

var iconNames = [...]string{
	IconClear:       "clear",
	IconLightClouds: "light_clouds",
	IconClouds:      "clouds",
	IconLightRain:   "light_rain",
	IconRain:        "rain",
	IconSnow:        "snow",
	IconFog:         "fog",
	IconStorm:       "storm",
}

// String returns the art resource name, e.g. "light_rain".
func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return fmt.Sprintf("icon(%d)", int(i))
	}
	return iconNames[i]
}

// Glyph is the terminal rendering of the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconClear:
		return "☀"
	case IconLightClouds:
		return "🌤"
	case IconClouds:
		return "☁"
	case IconLightRain:
		return "🌦"
	case IconRain:
		return "🌧"
	case IconSnow:
		return "❄"
	case IconFog:
		return "🌫"
	default:
		return "⛈"
	}
}

// IconFor maps an OpenWeatherMap condition id to its artwork.
// Unknown ids fall back to the storm icon.
func IconFor(weatherID int) Icon {
	switch {
	case weatherID >= 200 && weatherID <= 232:
		return IconStorm
	case weatherID >= 300 && weatherID <= 321:
		return IconLightRain
	case weatherID >= 500 && weatherID <= 504:
		return IconRain
	case weatherID == 511:
		return IconSnow
	case weatherID >= 520 && weatherID <= 531:
		return IconRain
	case weatherID >= 600 && weatherID <= 622:
		return IconSnow
	case weatherID >= 701 && weatherID <= 761:
		return IconFog
	case weatherID == 771 || weatherID == 781:
		return IconStorm
	case weatherID == 800:
		return IconClear
	case weatherID == 801:
		return IconLightClouds
	case weatherID >= 802 && weatherID <= 804:
		return IconClouds
	case weatherID >= 900 && weatherID <= 906:
		return IconStorm
	case weatherID >= 958 && weatherID <= 962:
		return IconStorm
	case weatherID >= 951 && weatherID <= 957:
		return IconClear
	}
	logging.Warn("unknown weather condition", "weather_id", weatherID)
	return IconStorm
}

var conditions = map[int]string{
	200: "Thunderstorm with light rain",
	201: "Thunderstorm with rain",
	202: "Thunderstorm with heavy rain",
	210: "Light thunderstorm",
	211: "Thunderstorm",
	212: "Heavy thunderstorm",
	221: "Ragged thunderstorm",
	230: "Thunderstorm with light drizzle",
	231: "Thunderstorm with drizzle",
	232: "Thunderstorm with heavy drizzle",

	300: "Light drizzle",
	301: "Drizzle",
	302: "Heavy drizzle",
	310: "Light drizzle and rain",
	311: "Drizzle and rain",
	312: "Heavy drizzle and rain",
	313: "Shower rain and drizzle",
	314: "Heavy shower rain and drizzle",
	321: "Shower drizzle",

	500: "Light rain",
	501: "Moderate rain",
	502: "Heavy rain",
	503: "Intense rain",
	504: "Extreme rain",
	511: "Freezing rain",
	520: "Light shower rain",
	521: "Shower rain",
	522: "Heavy shower rain",
	531: "Ragged shower rain",

	600: "Light snow",
	601: "Snow",
	602: "Heavy snow",
	611: "Sleet",
	612: "Shower sleet",
	615: "Light rain and snow",
	616: "Rain and snow",
	620: "Light shower snow",
	621: "Shower snow",
	622: "Heavy shower snow",

	701: "Mist",
	711: "Smoke",
	721: "Haze",
	731: "Sand and dust whirls",
	741: "Fog",
	751: "Sand",
	761: "Dust",
	762: "Volcanic ash",
	771: "Squalls",
	781: "Tornado",

	800: "Clear",
	801: "Mostly clear",
	802: "Scattered clouds",
	803: "Broken clouds",
	804: "Overcast clouds",

	900: "Tornado",
	901: "Tropical storm",
	902: "Hurricane",
	903: "Cold",
	904: "Hot",
	905: "Windy",
	906: "Hail",
	951: "Calm",
	952: "Light breeze",
	953: "Gentle breeze",
	954: "Breeze",
	955: "Fresh breeze",
	956: "Strong breeze",
	957: "High wind",
	958: "Gale",
	959: "Severe gale",
	960: "Storm",
	961: "Violent storm",
	962: "Hurricane",
}

// Describe returns the human-readable name of a condition id.
func Describe(weatherID int) string {
	if s, ok := conditions[weatherID]; ok {
		return s
	}
	return fmt.Sprintf("Unknown (%d)", weatherID)
}
