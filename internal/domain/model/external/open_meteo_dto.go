package external

// GeocodingResponse is the Open-Meteo geocoding search payload. Results is absent when nothing matched.
type GeocodingResponse struct {
	Results []GeocodingResultDTO `json:"results"`
}

type GeocodingResultDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// ForecastResponse is the Open-Meteo forecast payload with index-aligned daily arrays.
type ForecastResponse struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Current   CurrentDTO        `json:"current"`
	Daily     DailyDTO          `json:"daily"`
	Units     map[string]string `json:"current_units,omitempty"`
}

type CurrentDTO struct {
	Time               string  `json:"time"`
	Temperature2m      float64 `json:"temperature_2m"`
	RelativeHumidity2m float64 `json:"relative_humidity_2m"`
	WeatherCode        int     `json:"weather_code"`
	WindSpeed10m       float64 `json:"wind_speed_10m"`
}

type DailyDTO struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
}

// APIErrorResponse is the Open-Meteo error body.
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
