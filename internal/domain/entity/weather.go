package entity

type CurrentConditions struct {
	TemperatureCelsius       float64 `json:"temperatureCelsius"`
	RelativeHumidityPercent  float64 `json:"relativeHumidityPercent"`
	WindSpeedMetersPerSecond float64 `json:"windSpeedMetersPerSecond"`
	WeatherCode              int     `json:"weatherCode"`
}

type DailyForecast struct {
	Date                  string  `json:"date"`
	WeatherCode           int     `json:"weatherCode"`
	MaxTemperatureCelsius float64 `json:"maxTemperatureCelsius"`
	MinTemperatureCelsius float64 `json:"minTemperatureCelsius"`
}

// Forecast is the current conditions plus the chronological daily forecast for one location.
type Forecast struct {
	Current CurrentConditions `json:"current"`
	Daily   []DailyForecast   `json:"daily"`
}
