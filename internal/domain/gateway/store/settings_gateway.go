package store

import (
	"context"

	"go-weather/internal/domain/model"
)

// SettingsGateway persists the serialized settings blob under a single key.
type SettingsGateway interface {
	// Load returns the stored blob, or nil when nothing was saved yet.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored blob as a whole.
	Save(ctx context.Context, data []byte) error
	Health(ctx context.Context) model.ComponentHealthStatus
	Name() string
}

func upStatus(details map[string]string) model.ComponentHealthStatus {
	if details == nil {
		details = map[string]string{}
	}
	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

func downStatus(err error, details map[string]string) model.ComponentHealthStatus {
	if details == nil {
		details = map[string]string{}
	}
	details["message"] = err.Error()
	return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
}
