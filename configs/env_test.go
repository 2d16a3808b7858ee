package configs

import (
	"testing"

	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("PROPERTIES_FILE_PATH", "")
	t.Setenv("DEFAULT_CITY", "")
	t.Setenv("SETTINGS_STORE", "")

	if err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := resource.GetString("app.weather.default-city"); got != "Seoul" {
		t.Errorf("default city = %q", got)
	}
	if got := resource.GetString("app.settings.key"); got != "weatherSettings" {
		t.Errorf("settings key = %q", got)
	}
	if got := resource.GetString("app.weather.auto-refresh.cron"); got != "@every 10m" {
		t.Errorf("auto refresh cron = %q", got)
	}
	if got := msg.GetMessage("weather.lookup.state", "Start"); got != "Weather lookup Start" {
		t.Errorf("message = %q", got)
	}
	if Env.ContextPath == "" {
		t.Error("context path is empty")
	}
}
