package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// ForecastGateway fetches current conditions and the daily forecast for coordinates.
type ForecastGateway interface {
	// Fetch returns the forecast with the timezone resolved from the coordinates.
	// Any network, status or decode failure is returned as a *model.TransportError.
	Fetch(ctx context.Context, latitude, longitude float64, lang entity.Language) (*entity.Forecast, error)
}
