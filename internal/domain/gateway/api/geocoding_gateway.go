package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// GeocodingGateway resolves a free text city name to coordinates.
type GeocodingGateway interface {
	// Resolve returns the first match for query, localized in lang.
	// It fails with model.ErrNotFound when nothing matches or the service answers with a non-success status,
	// and with a *model.TransportError on network or decode failures.
	Resolve(ctx context.Context, query string, lang entity.Language) (*entity.Location, error)
}
