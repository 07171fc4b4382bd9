package weather

type conditionLabel struct {
	day   string
	night string
	icon  string
}

// WMO weather interpretation codes as reported by Open-Meteo
var conditionCodes = map[int]conditionLabel{
	0:  {"Sunny", "Clear", "clear"},
	1:  {"Mainly sunny", "Mainly clear", "clear"},
	2:  {"Partly cloudy", "Partly cloudy", "partly-cloudy"},
	3:  {"Overcast", "Overcast", "cloudy"},
	45: {"Fog", "Fog", "fog"},
	48: {"Freezing fog", "Freezing fog", "fog"},
	51: {"Light drizzle", "Light drizzle", "drizzle"},
	53: {"Drizzle", "Drizzle", "drizzle"},
	55: {"Heavy drizzle", "Heavy drizzle", "drizzle"},
	56: {"Light freezing drizzle", "Light freezing drizzle", "sleet"},
	57: {"Freezing drizzle", "Freezing drizzle", "sleet"},
	61: {"Light rain", "Light rain", "rain"},
	63: {"Rain", "Rain", "rain"},
	65: {"Heavy rain", "Heavy rain", "rain"},
	66: {"Light sleet", "Light sleet", "sleet"},
	67: {"Sleet", "Sleet", "sleet"},
	71: {"Light snow", "Light snow", "snow"},
	73: {"Snow", "Snow", "snow"},
	75: {"Heavy snow", "Heavy snow", "snow"},
	77: {"Snow grains", "Snow grains", "snow"},
	80: {"Light rain showers", "Light rain showers", "rain"},
	81: {"Rain showers", "Rain showers", "rain"},
	82: {"Torrential rain showers", "Torrential rain showers", "rain"},
	85: {"Light snow showers", "Light snow showers", "snow"},
	86: {"Heavy snow showers", "Heavy snow showers", "snow"},
	95: {"Thunderstorm", "Thunderstorm", "thunderstorm"},
	96: {"Thunderstorm with hail", "Thunderstorm with hail", "thunderstorm"},
	99: {"Thunderstorm with heavy hail", "Thunderstorm with heavy hail", "thunderstorm"},
}

// ConditionLabel translates a weather code into a label and icon for day or night.
// Unknown codes report "Unknown".
func ConditionLabel(code int, isDay bool) (label string, icon string) {
	entry, ok := conditionCodes[code]
	if !ok {
		return "Unknown", iconFor("unknown", isDay)
	}
	if isDay {
		return entry.day, iconFor(entry.icon, true)
	}
	return entry.night, iconFor(entry.icon, false)
}

func iconFor(base string, isDay bool) string {
	switch base {
	case "clear", "partly-cloudy":
		if isDay {
			return base + "-day"
		}
		return base + "-night"
	default:
		return base
	}
}
