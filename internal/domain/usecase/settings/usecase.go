package settings

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

type UseCase interface {
	// Load overlays the persisted blob on the defaults and makes the result current
	Load(ctx context.Context) entity.Settings

	// Get returns a copy of the current settings
	Get() entity.Settings

	// Update validates and merges a partial change, then persists the full settings
	Update(ctx context.Context, patch model.SettingsPatch) (model.SettingsChange, error)
}
