package api

import (
	"context"
	"errors"
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const geocodingSearchPath = "/v1/search"

type geocodingGatewayImpl struct {
	httpClient *http.Client
}

// NewGeocodingGateway creates an Open-Meteo geocoding gateway
func NewGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// Resolve searches the city and keeps the first result. Ambiguous names are not disambiguated.
func (g *geocodingGatewayImpl) Resolve(ctx context.Context, query string, lang entity.Language) (*entity.Location, error) {
	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(geocodingSearchPath).
		WithQueryParam("name", query).
		WithQueryParam("count", "1").
		WithQueryParam("language", string(lang)).
		WithQueryParam("format", "json").
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		var statusErr *http.StatusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("%w: geocoding answered %d", model.ErrNotFound, statusErr.StatusCode)
		}
		return nil, &model.TransportError{Op: "geocoding search", Err: err}
	}

	response := successResp.(*external.GeocodingResponse)
	if len(response.Results) == 0 {
		return nil, fmt.Errorf("%w: no match for '%s'", model.ErrNotFound, query)
	}

	first := response.Results[0]
	return &entity.Location{
		Latitude:      first.Latitude,
		Longitude:     first.Longitude,
		CanonicalName: first.Name,
		CountryName:   first.Country,
	}, nil
}
