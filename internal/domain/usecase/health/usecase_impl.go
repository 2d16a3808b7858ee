package health

import (
	"context"

	"go-weather/internal/domain/gateway/notify"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	settingsStore store.SettingsGateway
	notifier      notify.Notifier
}

func NewHealthUseCase(settingsStore store.SettingsGateway, notifier notify.Notifier) UseCase {
	return &healthUseCase{
		settingsStore: settingsStore,
		notifier:      notifier,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	storeHealth := useCase.settingsStore.Health(ctx)
	notificationHealth := useCase.notifier.Health(ctx)

	overallStatus := model.StatusUp
	if storeHealth.Status != model.StatusUp || notificationHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:        overallStatus,
		SettingsStore: storeHealth,
		Notification:  notificationHealth,
	}
}
