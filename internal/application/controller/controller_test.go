package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/notify"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/settings"
	"go-weather/internal/domain/usecase/weather"

	"github.com/labstack/echo/v4"
)

type stubGeocoding struct{}

func (stubGeocoding) Resolve(_ context.Context, query string, _ entity.Language) (*entity.Location, error) {
	if query != "Seoul" {
		return nil, model.ErrNotFound
	}
	return &entity.Location{Latitude: 37.57, Longitude: 126.98, CanonicalName: "Seoul", CountryName: "South Korea"}, nil
}

type stubForecast struct{}

func (stubForecast) Fetch(context.Context, float64, float64, entity.Language) (*entity.Forecast, error) {
	return &entity.Forecast{
		Current: entity.CurrentConditions{TemperatureCelsius: 20, RelativeHumidityPercent: 50, WindSpeedMetersPerSecond: 2, WeatherCode: 3},
		Daily: []entity.DailyForecast{
			{Date: "2026-10-16", WeatherCode: 3, MaxTemperatureCelsius: 21, MinTemperatureCelsius: 11},
		},
	}, nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	api := e.Group("/go-weather")

	notifier := notify.NewLogNotifier()
	settingsStore := store.NewMemorySettingsGateway()
	settingsUseCase := settings.NewSettingsUseCase(settingsStore, notifier)
	weatherUseCase := weather.NewWeatherUseCase("Seoul", stubGeocoding{}, stubForecast{}, settingsUseCase, notifier)

	NewWeatherController(api, weatherUseCase).InitWeatherRoutes()
	NewSettingsController(api, settingsUseCase, weatherUseCase).InitSettingsRoutes()
	NewI18nController(api).InitI18nRoutes()
	NewHealthController(api, health.NewHealthUseCase(settingsStore, notifier)).InitHealthRoutes()
	return e
}

func serve(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	if err := json.Unmarshal(recorder.Body.Bytes(), &value); err != nil {
		t.Fatalf("invalid response body %q: %v", recorder.Body.String(), err)
	}
	return value
}

func TestWeatherRoutes(t *testing.T) {
	e := newTestServer(t)

	if recorder := serve(e, http.MethodGet, "/go-weather/weather/latest", "", nil); recorder.Code != http.StatusNoContent {
		t.Fatalf("latest before lookup = %d", recorder.Code)
	}
	if recorder := serve(e, http.MethodGet, "/go-weather/weather?city=%20%20", "", nil); recorder.Code != http.StatusBadRequest {
		t.Errorf("blank city = %d", recorder.Code)
	}

	notFound := serve(e, http.MethodGet, "/go-weather/weather?city=Atlantis", "", nil)
	if notFound.Code != http.StatusNotFound {
		t.Errorf("unknown city = %d", notFound.Code)
	}
	if result := decode[model.DisplayResult](t, notFound); result.ErrorMessage != "City not found." {
		t.Errorf("error message = %q", result.ErrorMessage)
	}

	found := serve(e, http.MethodGet, "/go-weather/weather?city=Seoul", "", nil)
	if found.Code != http.StatusOK {
		t.Fatalf("known city = %d: %s", found.Code, found.Body.String())
	}
	result := decode[model.DisplayResult](t, found)
	if result.CityLabel != "Seoul, South Korea" || result.Current.Temperature != "20°C" || len(result.Forecast) != 1 {
		t.Errorf("result = %+v", result)
	}

	latest := serve(e, http.MethodGet, "/go-weather/weather/latest", "", nil)
	if latest.Code != http.StatusOK || decode[model.DisplayResult](t, latest).Sequence != result.Sequence {
		t.Errorf("latest = %d %s", latest.Code, latest.Body.String())
	}

	refreshed := serve(e, http.MethodPost, "/go-weather/weather/refresh", "", nil)
	if refreshed.Code != http.StatusOK || decode[model.DisplayResult](t, refreshed).Query != "Seoul" {
		t.Errorf("refresh = %d %s", refreshed.Code, refreshed.Body.String())
	}
}

func TestSettingsRoutes(t *testing.T) {
	e := newTestServer(t)

	initial := serve(e, http.MethodGet, "/go-weather/settings", "", nil)
	if decode[entity.Settings](t, initial) != entity.DefaultSettings() {
		t.Errorf("initial settings = %s", initial.Body.String())
	}

	if recorder := serve(e, http.MethodPatch, "/go-weather/settings", `{"unit":"kelvin"}`, nil); recorder.Code != http.StatusBadRequest {
		t.Errorf("invalid unit = %d", recorder.Code)
	}

	themeOnly := serve(e, http.MethodPatch, "/go-weather/settings", `{"theme":"dark"}`, nil)
	if response := decode[model.SettingsResponse](t, themeOnly); response.Settings.Theme != entity.ThemeDark || response.Weather != nil {
		t.Errorf("theme update = %s", themeOnly.Body.String())
	}

	serve(e, http.MethodGet, "/go-weather/weather?city=Seoul", "", nil)
	unitChange := serve(e, http.MethodPatch, "/go-weather/settings", `{"unit":"fahrenheit","language":"ko"}`, nil)
	response := decode[model.SettingsResponse](t, unitChange)
	if response.Weather == nil {
		t.Fatalf("unit change did not re-render the weather: %s", unitChange.Body.String())
	}
	if response.Weather.Current.Temperature != "68°F" || response.Weather.Labels.Humidity != "습도" {
		t.Errorf("re-rendered weather = %+v", response.Weather.Current)
	}
}

func TestSettingsChangeAfterFailedSearchDoesNotRepeatIt(t *testing.T) {
	e := newTestServer(t)

	serve(e, http.MethodGet, "/go-weather/weather?city=Atlantis", "", nil)
	unitChange := serve(e, http.MethodPatch, "/go-weather/settings", `{"unit":"fahrenheit"}`, nil)
	if response := decode[model.SettingsResponse](t, unitChange); response.Weather != nil {
		t.Errorf("failed search was repeated: %s", unitChange.Body.String())
	}
}

func TestI18nRoutes(t *testing.T) {
	e := newTestServer(t)

	negotiated := serve(e, http.MethodGet, "/go-weather/i18n", "", map[string]string{"Accept-Language": "ja-JP,ja;q=0.9,en;q=0.5"})
	if response := decode[model.TranslationResponse](t, negotiated); response.Language != entity.LanguageJapanese || response.Locale != "ja-JP" {
		t.Errorf("negotiated = %+v", response)
	}

	korean := serve(e, http.MethodGet, "/go-weather/i18n/ko", "", nil)
	if response := decode[model.TranslationResponse](t, korean); response.Strings["searchBtn"] != "검색" {
		t.Errorf("korean = %+v", response)
	}

	if recorder := serve(e, http.MethodGet, "/go-weather/i18n/fr", "", nil); recorder.Code != http.StatusNotFound {
		t.Errorf("unsupported language = %d", recorder.Code)
	}
}

func TestHealthRoute(t *testing.T) {
	e := newTestServer(t)

	recorder := serve(e, http.MethodGet, "/go-weather/health", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("health = %d", recorder.Code)
	}
	if response := decode[model.HealthResponse](t, recorder); response.SettingsStore.Details["backend"] != "memory" {
		t.Errorf("health = %+v", response)
	}
}
