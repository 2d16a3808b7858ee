package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/util/numberutils"
)

const (
	forecastPath = "/v1/forecast"
	// Open-Meteo serves at most 16 forecast days
	maxForecastDays     = 16
	defaultForecastDays = 7
)

var (
	currentFields = []string{"temperature_2m", "relative_humidity_2m", "weather_code", "wind_speed_10m"}
	dailyFields   = []string{"weather_code", "temperature_2m_max", "temperature_2m_min"}
)

type forecastGatewayImpl struct {
	httpClient *http.Client
	days       int
}

// NewForecastGateway creates an Open-Meteo forecast gateway returning the given number of days,
// 7 when days is not positive
func NewForecastGateway(baseUrl string, days int, clientOptions http.ClientOptions) ForecastGateway {
	if days <= 0 {
		days = defaultForecastDays
	}
	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		days:       numberutils.ClampInt(days, 1, maxForecastDays),
	}
}

// Fetch gets current conditions and the daily forecast
func (g *forecastGatewayImpl) Fetch(ctx context.Context, latitude, longitude float64, lang entity.Language) (*entity.Forecast, error) {
	request := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParam("latitude", formatCoordinate(latitude)).
		WithQueryParam("longitude", formatCoordinate(longitude)).
		WithQueryParam("current", strings.Join(currentFields, ",")).
		WithQueryParam("daily", strings.Join(dailyFields, ",")).
		WithQueryParam("timezone", "auto").
		WithQueryParam("wind_speed_unit", "ms").
		WithQueryParam("lang", string(lang)).
		WithQueryParam("forecast_days", strconv.Itoa(g.days)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{})

	successResp, errResp, _, err := request.Execute()
	if err != nil {
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Reason != "" {
			err = fmt.Errorf("%w: %s", err, apiErr.Reason)
		}
		return nil, &model.TransportError{Op: "forecast fetch", Err: err}
	}

	forecast, err := convertForecastResponse(successResp.(*external.ForecastResponse))
	if err != nil {
		return nil, &model.TransportError{Op: "forecast decode", Err: err}
	}
	return forecast, nil
}

// convertForecastResponse zips the index-aligned daily arrays into records
func convertForecastResponse(response *external.ForecastResponse) (*entity.Forecast, error) {
	daily := response.Daily
	days := len(daily.Time)
	if len(daily.WeatherCode) != days || len(daily.Temperature2mMax) != days || len(daily.Temperature2mMin) != days {
		return nil, fmt.Errorf("daily arrays are not aligned: time=%d weather_code=%d max=%d min=%d",
			days, len(daily.WeatherCode), len(daily.Temperature2mMax), len(daily.Temperature2mMin))
	}

	forecasts := make([]entity.DailyForecast, 0, days)
	for i, date := range daily.Time {
		forecasts = append(forecasts, entity.DailyForecast{
			Date:                  date,
			WeatherCode:           daily.WeatherCode[i],
			MaxTemperatureCelsius: daily.Temperature2mMax[i],
			MinTemperatureCelsius: daily.Temperature2mMin[i],
		})
	}

	return &entity.Forecast{
		Current: entity.CurrentConditions{
			TemperatureCelsius:       response.Current.Temperature2m,
			RelativeHumidityPercent:  response.Current.RelativeHumidity2m,
			WindSpeedMetersPerSecond: response.Current.WindSpeed10m,
			WeatherCode:              response.Current.WeatherCode,
		},
		Daily: forecasts,
	}, nil
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
