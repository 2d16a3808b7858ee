package catalog

// WeatherCodeEntry describes a WMO weather code.
type WeatherCodeEntry struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
	// Image is the background category of the condition.
	Image string `json:"image"`
}

// UnknownWeatherCode is returned for codes missing from the catalog.
var UnknownWeatherCode = WeatherCodeEntry{Description: "Unknown", Icon: "🌤️", Image: "sunny"}

var weatherCodes = map[int]WeatherCodeEntry{
	0:  {Description: "Clear", Icon: "☀️", Image: "sunny"},
	1:  {Description: "Mainly Clear", Icon: "🌤️", Image: "sunny"},
	2:  {Description: "Partly Cloudy", Icon: "⛅", Image: "cloudy"},
	3:  {Description: "Overcast", Icon: "☁️", Image: "overcast"},
	45: {Description: "Fog", Icon: "🌫️", Image: "fog"},
	48: {Description: "Fog", Icon: "🌫️", Image: "fog"},
	51: {Description: "Drizzle", Icon: "🌦️", Image: "drizzle"},
	53: {Description: "Drizzle", Icon: "🌦️", Image: "drizzle"},
	55: {Description: "Drizzle", Icon: "🌧️", Image: "rain"},
	61: {Description: "Rain", Icon: "🌧️", Image: "rain"},
	63: {Description: "Rain", Icon: "🌧️", Image: "rain"},
	65: {Description: "Rain", Icon: "🌧️", Image: "rain"},
	71: {Description: "Snow", Icon: "❄️", Image: "snow"},
	73: {Description: "Snow", Icon: "❄️", Image: "snow"},
	75: {Description: "Snow", Icon: "❄️", Image: "snow"},
	80: {Description: "Rain Showers", Icon: "🌦️", Image: "rain"},
	81: {Description: "Rain Showers", Icon: "🌦️", Image: "rain"},
	82: {Description: "Rain Showers", Icon: "🌧️", Image: "rain"},
	95: {Description: "Thunderstorm", Icon: "⛈️", Image: "thunderstorm"},
	96: {Description: "Thunderstorm", Icon: "⛈️", Image: "thunderstorm"},
	99: {Description: "Thunderstorm", Icon: "⛈️", Image: "thunderstorm"},
}

// DescribeWeatherCode is total: codes not in the catalog map to UnknownWeatherCode.
func DescribeWeatherCode(code int) WeatherCodeEntry {
	if entry, ok := weatherCodes[code]; ok {
		return entry
	}
	return UnknownWeatherCode
}

// KnownWeatherCodes returns the catalogued codes.
func KnownWeatherCodes() []int {
	codes := make([]int, 0, len(weatherCodes))
	for code := range weatherCodes {
		codes = append(codes, code)
	}
	return codes
}
