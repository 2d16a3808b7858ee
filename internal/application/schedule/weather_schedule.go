package schedule

import (
	"context"
	"time"

	"go-weather/internal/domain/usecase/settings"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultRefreshTimeout = 30 * time.Second

// WeatherScheduler re-runs the displayed lookup while auto refresh is enabled
type WeatherScheduler struct {
	cron            *cron.Cron
	useCase         weather.UseCase
	settingsUseCase settings.UseCase
	cronExpression  string
	timeout         time.Duration
}

// NewWeatherScheduler creates a scheduler, timeout bounds a single refresh
func NewWeatherScheduler(useCase weather.UseCase, settingsUseCase settings.UseCase, cronExpression string, timeout time.Duration) *WeatherScheduler {
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}
	return &WeatherScheduler{
		cron:            cron.New(),
		useCase:         useCase,
		settingsUseCase: settingsUseCase,
		cronExpression:  cronExpression,
		timeout:         timeout,
	}
}

// InitWeatherScheduleTasks registers the refresh job and starts the cron
func (s *WeatherScheduler) InitWeatherScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("weather.cron.started", s.cronExpression))
	return nil
}

// ExecuteScheduledTask refreshes the displayed weather, it is a no-op when auto refresh is off
// or no successful result is showing
func (s *WeatherScheduler) ExecuteScheduledTask() {
	requestID := uuid.NewString()

	if !s.settingsUseCase.Get().AutoRefresh {
		log.Debug(msg.GetMessage("weather.cron.disabled"), zap.String("request_id", requestID))
		return
	}
	if latest, ok := s.useCase.Latest(); !ok || latest.IsError() {
		log.Debug(msg.GetMessage("weather.cron.nothing-displayed"), zap.String("request_id", requestID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	log.Info(msg.GetMessage("weather.cron.start"), zap.String("request_id", requestID))
	result := s.useCase.Refresh(ctx)
	if result.IsError() {
		log.Warn(msg.GetMessage("weather.cron.failed", result.Query), zap.String("request_id", requestID))
		return
	}
	log.Info(msg.GetMessage("weather.cron.end", result.CityLabel), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *WeatherScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
