package weather

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/notify"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/settings"
)

type fakeGeocoding struct {
	locations map[string]entity.Location
	err       error
	// gates blocks the resolution of a query until the channel is closed
	gates map[string]chan struct{}
}

func (f *fakeGeocoding) Resolve(_ context.Context, query string, _ entity.Language) (*entity.Location, error) {
	if gate, ok := f.gates[query]; ok {
		<-gate
	}
	if f.err != nil {
		return nil, f.err
	}
	location, ok := f.locations[query]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &location, nil
}

type fakeForecast struct {
	forecast *entity.Forecast
	err      error
	langs    []entity.Language
	mu       sync.Mutex
}

func (f *fakeForecast) Fetch(_ context.Context, _, _ float64, lang entity.Language) (*entity.Forecast, error) {
	f.mu.Lock()
	f.langs = append(f.langs, lang)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.forecast, nil
}

type recordingNotifier struct {
	*notify.LogNotifier
	mu   sync.Mutex
	sent []notify.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, notification notify.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	return n.err
}

func seoul() entity.Location {
	return entity.Location{Latitude: 37.566, Longitude: 126.9784, CanonicalName: "Seoul", CountryName: "South Korea"}
}

func threeDayForecast() *entity.Forecast {
	return &entity.Forecast{
		Current: entity.CurrentConditions{
			TemperatureCelsius:       -5,
			RelativeHumidityPercent:  64,
			WindSpeedMetersPerSecond: 3.4,
			WeatherCode:              0,
		},
		Daily: []entity.DailyForecast{
			{Date: "2026-05-04", WeatherCode: 61, MaxTemperatureCelsius: 21.5, MinTemperatureCelsius: 12.4},
			{Date: "2026-05-05", WeatherCode: 3, MaxTemperatureCelsius: 0, MinTemperatureCelsius: -2.5},
			{Date: "2026-05-06", WeatherCode: 1000, MaxTemperatureCelsius: 18, MinTemperatureCelsius: 9},
		},
	}
}

type fixture struct {
	useCase   UseCase
	settings  settings.UseCase
	geocoding *fakeGeocoding
	forecast  *fakeForecast
	notifier  *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		geocoding: &fakeGeocoding{locations: map[string]entity.Location{"Seoul": seoul()}},
		forecast:  &fakeForecast{forecast: threeDayForecast()},
		notifier:  &recordingNotifier{LogNotifier: notify.NewLogNotifier()},
	}
	f.settings = settings.NewSettingsUseCase(store.NewMemorySettingsGateway(), f.notifier)
	f.useCase = NewWeatherUseCase("Seoul", f.geocoding, f.forecast, f.settings, f.notifier)
	return f
}

func (f *fixture) update(t *testing.T, patch model.SettingsPatch) {
	t.Helper()
	if _, err := f.settings.Update(context.Background(), patch); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}
}

func ptr[T any](value T) *T {
	return &value
}

func TestLookupNotFoundIsLocalized(t *testing.T) {
	tests := []struct {
		lang entity.Language
		want string
	}{
		{lang: entity.LanguageEnglish, want: "City not found."},
		{lang: entity.LanguageKorean, want: "도시를 찾을 수 없습니다."},
		{lang: entity.LanguageJapanese, want: "都市が見つかりません。"},
		{lang: entity.LanguageChinese, want: "未找到城市。"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			f := newFixture(t)
			f.update(t, model.SettingsPatch{Language: ptr(tt.lang)})

			result := f.useCase.Lookup(context.Background(), "Atlantis")
			if !result.IsError() || result.ErrorMessage != tt.want {
				t.Errorf("ErrorMessage = %q, want %q", result.ErrorMessage, tt.want)
			}
			if result.Current != nil || len(result.Forecast) != 0 {
				t.Errorf("error result carries weather data: %+v", result)
			}
		})
	}
}

func TestLookupCollapsesEveryFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
		query string
	}{
		{name: "blank query", query: "   "},
		{name: "geocoding transport failure", query: "Seoul", setup: func(f *fixture) {
			f.geocoding.err = &model.TransportError{Op: "geocoding", Err: errors.New("connection reset")}
		}},
		{name: "forecast failure", query: "Seoul", setup: func(f *fixture) {
			f.forecast.err = &model.TransportError{Op: "forecast", Err: errors.New("unexpected EOF")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			result := f.useCase.Lookup(context.Background(), tt.query)
			if result.ErrorMessage != "City not found." {
				t.Errorf("ErrorMessage = %q", result.ErrorMessage)
			}
		})
	}
}

func TestLookupComposesResult(t *testing.T) {
	f := newFixture(t)
	f.update(t, model.SettingsPatch{Unit: ptr(entity.UnitFahrenheit)})

	result := f.useCase.Lookup(context.Background(), "  Seoul ")

	if result.IsError() {
		t.Fatalf("unexpected error result: %s", result.ErrorMessage)
	}
	if result.Query != "Seoul" || result.CityLabel != "Seoul, South Korea" {
		t.Errorf("query/label = %q/%q", result.Query, result.CityLabel)
	}
	if len(result.Forecast) != 3 {
		t.Fatalf("forecast length = %d, want 3", len(result.Forecast))
	}

	current := result.Current
	if current.Temperature != "23°F" || current.Humidity != "64%" || current.WindSpeed != "3.4 m/s" {
		t.Errorf("current = %+v", current)
	}
	if current.Description != "Clear" || current.Icon != "☀️" || current.Background != "sunny" {
		t.Errorf("current condition = %q %q %q", current.Description, current.Icon, current.Background)
	}

	first := result.Forecast[0]
	if first.MaxTemperature != "71°F" || first.MinTemperature != "54°F" {
		t.Errorf("first day temperatures = %s/%s", first.MaxTemperature, first.MinTemperature)
	}
	if first.DayName != "Mon" || first.MonthDay != "5/4" || first.Description != "Rain" {
		t.Errorf("first day = %+v", first)
	}
	if second := result.Forecast[1]; second.MaxTemperature != "32°F" || second.MinTemperature != "28°F" {
		t.Errorf("second day temperatures = %s/%s", second.MaxTemperature, second.MinTemperature)
	}
	if third := result.Forecast[2]; third.Description != "Unknown" || third.Icon != "🌤️" {
		t.Errorf("unknown code rendered as %q %q", third.Description, third.Icon)
	}
	if result.Labels.Humidity != "Humidity" || result.Labels.ForecastTitle != "7-Day Forecast" {
		t.Errorf("labels = %+v", result.Labels)
	}
}

func TestLanguageSwitchOnlyChangesStrings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	english := f.useCase.Lookup(ctx, "Seoul")
	f.update(t, model.SettingsPatch{Language: ptr(entity.LanguageKorean)})
	korean := f.useCase.Lookup(ctx, "Seoul")

	if english.Current.CurrentConditions != korean.Current.CurrentConditions || english.Current.Temperature != korean.Current.Temperature {
		t.Errorf("current values changed: %+v vs %+v", english.Current, korean.Current)
	}
	for i := range english.Forecast {
		if english.Forecast[i].DailyForecast != korean.Forecast[i].DailyForecast ||
			english.Forecast[i].MaxTemperature != korean.Forecast[i].MaxTemperature {
			t.Errorf("day %d values changed", i)
		}
	}
	if korean.Labels.Humidity != "습도" || korean.Forecast[0].DayName != "월" {
		t.Errorf("korean strings = %q %q", korean.Labels.Humidity, korean.Forecast[0].DayName)
	}
	if got := f.forecast.langs; len(got) != 2 || got[1] != entity.LanguageKorean {
		t.Errorf("forecast languages = %v", got)
	}
}

func TestOlderResultNeverReplacesNewerOne(t *testing.T) {
	f := newFixture(t)
	f.geocoding.locations["Busan"] = entity.Location{CanonicalName: "Busan", CountryName: "South Korea"}
	gate := make(chan struct{})
	f.geocoding.gates = map[string]chan struct{}{"Seoul": gate}
	ctx := context.Background()

	slow := make(chan model.DisplayResult)
	go func() {
		slow <- f.useCase.Lookup(ctx, "Seoul")
	}()

	// the slow lookup holds sequence 1 while it waits on the gate
	for f.useCase.(*weatherUseCase).sequence.Load() < 1 {
		runtime.Gosched()
	}

	fast := f.useCase.Lookup(ctx, "Busan")
	close(gate)
	older := <-slow

	if fast.Sequence <= older.Sequence {
		t.Fatalf("sequences = %d (fast) / %d (slow)", fast.Sequence, older.Sequence)
	}
	if !older.Stale || fast.Stale {
		t.Errorf("stale flags = %v (slow) / %v (fast)", older.Stale, fast.Stale)
	}
	latest, ok := f.useCase.Latest()
	if !ok || latest.CityLabel != "Busan, South Korea" {
		t.Errorf("latest = %+v", latest)
	}
}

func TestRefreshRepeatsLastQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if result := f.useCase.Refresh(ctx); result.Query != "Seoul" {
		t.Fatalf("first refresh query = %q, want default city", result.Query)
	}

	f.geocoding.locations["Tokyo"] = entity.Location{CanonicalName: "Tokyo", CountryName: "Japan"}
	f.useCase.Lookup(ctx, "Tokyo")
	if result := f.useCase.Refresh(ctx); result.CityLabel != "Tokyo, Japan" {
		t.Errorf("refresh label = %q", result.CityLabel)
	}
}

func TestNotificationIsSentOnlyWhenEnabledAndGranted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.useCase.Lookup(ctx, "Seoul")
	f.useCase.Wait()
	if len(f.notifier.sent) != 0 {
		t.Fatalf("notification sent while disabled")
	}

	f.update(t, model.SettingsPatch{Notifications: ptr(true), Language: ptr(entity.LanguageJapanese)})
	f.notifier.err = errors.New("delivery failed")
	result := f.useCase.Lookup(ctx, "Seoul")
	f.useCase.Wait()

	if result.IsError() {
		t.Fatalf("failed notification changed the result: %+v", result)
	}
	if len(f.notifier.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(f.notifier.sent))
	}
	sent := f.notifier.sent[0]
	if sent.Title != "Seoulの天気" || sent.Body != "-5°C - Clear" || sent.Sequence != result.Sequence {
		t.Errorf("notification = %+v", sent)
	}
}
