package model

import "go-weather/internal/domain/entity"

// DisplayResult is what the renderer receives for one lookup: either the weather
// fields or a single localized ErrorMessage.
type DisplayResult struct {
	Sequence     uint64          `json:"sequence"`
	Stale        bool            `json:"stale,omitempty"`
	Query        string          `json:"query"`
	Language     entity.Language `json:"language"`
	Unit         entity.Unit     `json:"unit"`
	CityLabel    string          `json:"cityLabel,omitempty"`
	Current      *CurrentView    `json:"current,omitempty"`
	Forecast     []ForecastDay   `json:"forecast,omitempty"`
	Labels       *Labels         `json:"labels,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
}

// IsError reports whether the result has the error shape.
func (r DisplayResult) IsError() bool {
	return r.ErrorMessage != ""
}

// CurrentView is the current conditions with their rendered strings.
type CurrentView struct {
	entity.CurrentConditions
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"windSpeed"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Background  string `json:"background"`
}

// ForecastDay is one daily forecast entry with its rendered strings.
type ForecastDay struct {
	entity.DailyForecast
	DayName        string `json:"dayName"`
	MonthDay       string `json:"monthDay"`
	MaxTemperature string `json:"maxTemperature"`
	MinTemperature string `json:"minTemperature"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
}

// Labels are the localized captions shown next to the result.
type Labels struct {
	Humidity      string `json:"humidity"`
	Wind          string `json:"wind"`
	ForecastTitle string `json:"forecastTitle"`
}
