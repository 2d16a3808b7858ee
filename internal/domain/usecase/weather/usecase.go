package weather

import (
	"context"

	"go-weather/internal/domain/model"
)

type UseCase interface {
	// Lookup geocodes the query, fetches its forecast and renders the result with the current settings.
	// Every failure is rendered as the localized not-found message.
	Lookup(ctx context.Context, query string) model.DisplayResult

	// Latest returns the newest committed result, false before the first lookup completes
	Latest() (model.DisplayResult, bool)

	// Refresh repeats the last query, or looks up the default city when nothing was displayed yet
	Refresh(ctx context.Context) model.DisplayResult

	// Wait blocks until the notifications started so far were delivered or failed
	Wait()
}
