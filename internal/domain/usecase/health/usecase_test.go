package health

import (
	"context"
	"errors"
	"testing"

	"go-weather/internal/domain/gateway/notify"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/model"
)

type downStore struct {
	*store.MemorySettingsGateway
}

func (downStore) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusDown, Details: map[string]string{"message": errors.New("disk full").Error()}}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name  string
		store store.SettingsGateway
		want  model.HealthStatus
	}{
		{name: "all components up", store: store.NewMemorySettingsGateway(), want: model.StatusUp},
		{name: "settings store down", store: downStore{store.NewMemorySettingsGateway()}, want: model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := NewHealthUseCase(tt.store, notify.NewLogNotifier()).CheckHealth(context.Background())
			if response.Status != tt.want {
				t.Errorf("Status = %s, want %s", response.Status, tt.want)
			}
			if response.Notification.Details["channel"] != "log" {
				t.Errorf("notification details = %v", response.Notification.Details)
			}
		})
	}
}
