package weather

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/notify"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/unit"
	"go-weather/internal/domain/usecase/settings"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lookupState string

const (
	stateStart     lookupState = "Start"
	stateGeocoded  lookupState = "Geocoded"
	stateResolved  lookupState = "Resolved"
	stateFailed    lookupState = "Failed"
	stateCompleted lookupState = "Completed"
)

const (
	notificationIcon    = "🌤️"
	notificationTimeout = 10 * time.Second
)

type weatherUseCase struct {
	defaultCity      string
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
	settingsUseCase  settings.UseCase
	notifier         notify.Notifier

	sequence atomic.Uint64
	mu       sync.RWMutex
	latest   *model.DisplayResult

	notifications sync.WaitGroup
}

func NewWeatherUseCase(defaultCity string, geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway, settingsUseCase settings.UseCase, notifier notify.Notifier) UseCase {
	return &weatherUseCase{
		defaultCity:      defaultCity,
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
		settingsUseCase:  settingsUseCase,
		notifier:         notifier,
	}
}

func (uc *weatherUseCase) Lookup(ctx context.Context, query string) model.DisplayResult {
	sequence := uc.sequence.Add(1)
	current := uc.settingsUseCase.Get()
	logger := log.With(
		zap.String("request_id", uuid.NewString()),
		zap.Uint64("sequence", sequence),
	)

	query = strings.TrimSpace(query)
	result := model.DisplayResult{
		Sequence: sequence,
		Query:    query,
		Language: current.Language,
		Unit:     current.Unit,
	}
	translation := catalog.Translate(current.Language)

	logger.Info(msg.GetMessage("weather.lookup.state", stateStart), zap.String("query", query))
	location, forecast, err := uc.resolve(ctx, logger, query, current.Language)
	if err != nil {
		logger.Warn(msg.GetMessage("weather.lookup.state", stateFailed), zap.Error(err))
		result.ErrorMessage = translation.ErrorNotFound
		return uc.commit(result)
	}

	compose(&result, translation, location, forecast, current.Unit)
	logger.Info(msg.GetMessage("weather.lookup.state", stateResolved), zap.String("city", result.CityLabel))

	result = uc.commit(result)
	if current.Notifications && !result.Stale {
		uc.notify(logger, result, translation, location.CanonicalName)
	}
	logger.Info(msg.GetMessage("weather.lookup.state", stateCompleted), zap.Bool("stale", result.Stale))
	return result
}

// resolve runs the two upstream calls in order, the forecast depends on the geocoded coordinates
func (uc *weatherUseCase) resolve(ctx context.Context, logger *zap.Logger, query string, lang entity.Language) (*entity.Location, *entity.Forecast, error) {
	if query == "" {
		return nil, nil, model.ErrNotFound
	}

	location, err := uc.geocodingGateway.Resolve(ctx, query, lang)
	if err != nil {
		return nil, nil, err
	}
	logger.Info(msg.GetMessage("weather.lookup.state", stateGeocoded),
		zap.Float64("latitude", location.Latitude),
		zap.Float64("longitude", location.Longitude),
	)

	forecast, err := uc.forecastGateway.Fetch(ctx, location.Latitude, location.Longitude, lang)
	if err != nil {
		return nil, nil, err
	}
	return location, forecast, nil
}

// commit stores result as the latest one unless a newer lookup was committed first
func (uc *weatherUseCase) commit(result model.DisplayResult) model.DisplayResult {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.latest != nil && uc.latest.Sequence > result.Sequence {
		result.Stale = true
		log.Info(msg.GetMessage("weather.lookup.stale", result.Sequence, uc.latest.Sequence))
		return result
	}
	stored := result
	uc.latest = &stored
	return result
}

func (uc *weatherUseCase) Latest() (model.DisplayResult, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.latest == nil {
		return model.DisplayResult{}, false
	}
	return *uc.latest, true
}

func (uc *weatherUseCase) Refresh(ctx context.Context) model.DisplayResult {
	query := uc.defaultCity
	if latest, ok := uc.Latest(); ok && latest.Query != "" {
		query = latest.Query
	}
	return uc.Lookup(ctx, query)
}

// notify sends in the background, a failed delivery never changes the result
func (uc *weatherUseCase) notify(logger *zap.Logger, result model.DisplayResult, translation catalog.Translation, city string) {
	if uc.notifier == nil || uc.notifier.Permission() != notify.PermissionGranted {
		return
	}

	notification := notify.Notification{
		Title:    translation.WeatherIn(city),
		Body:     result.Current.Temperature + " - " + result.Current.Description,
		Icon:     notificationIcon,
		City:     city,
		Sequence: result.Sequence,
		SentAt:   time.Now(),
	}

	uc.notifications.Add(1)
	go func() {
		defer uc.notifications.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()

		if err := uc.notifier.Notify(ctx, notification); err != nil {
			logger.Warn(msg.GetMessage("notification.failed", uc.notifier.Name(), err))
		}
	}()
}

func (uc *weatherUseCase) Wait() {
	uc.notifications.Wait()
}

func compose(result *model.DisplayResult, translation catalog.Translation, location *entity.Location, forecast *entity.Forecast, tempUnit entity.Unit) {
	result.CityLabel = location.CanonicalName + ", " + location.CountryName

	condition := catalog.DescribeWeatherCode(forecast.Current.WeatherCode)
	result.Current = &model.CurrentView{
		CurrentConditions: forecast.Current,
		Temperature:       unit.FormatTemperature(forecast.Current.TemperatureCelsius, tempUnit),
		Humidity:          formatNumber(forecast.Current.RelativeHumidityPercent) + "%",
		WindSpeed:         formatNumber(forecast.Current.WindSpeedMetersPerSecond) + " m/s",
		Description:       condition.Description,
		Icon:              condition.Icon,
		Background:        condition.Image,
	}

	result.Forecast = make([]model.ForecastDay, 0, len(forecast.Daily))
	for _, day := range forecast.Daily {
		entry := catalog.DescribeWeatherCode(day.WeatherCode)
		dayName, monthDay := formatDate(day.Date, translation)
		result.Forecast = append(result.Forecast, model.ForecastDay{
			DailyForecast:  day,
			DayName:        dayName,
			MonthDay:       monthDay,
			MaxTemperature: unit.FormatTemperature(day.MaxTemperatureCelsius, tempUnit),
			MinTemperature: unit.FormatTemperature(day.MinTemperatureCelsius, tempUnit),
			Description:    entry.Description,
			Icon:           entry.Icon,
		})
	}

	result.Labels = &model.Labels{
		Humidity:      translation.Humidity,
		Wind:          translation.Wind,
		ForecastTitle: translation.ForecastTitle,
	}
}

// formatDate renders an ISO date as a short weekday and M/D. Dates that do not parse are shown as is.
func formatDate(date string, translation catalog.Translation) (string, string) {
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date, ""
	}
	return translation.Weekday(parsed.Weekday()), strconv.Itoa(int(parsed.Month())) + "/" + strconv.Itoa(parsed.Day())
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
