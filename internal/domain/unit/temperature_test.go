package unit

import (
	"strings"
	"testing"

	"go-weather/internal/domain/entity"
)

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		celsius float64
		unit    entity.Unit
		want    string
	}{
		{0, entity.UnitCelsius, "0°C"},
		{0, entity.UnitFahrenheit, "32°F"},
		{-5, entity.UnitFahrenheit, "23°F"},
		{100, entity.UnitFahrenheit, "212°F"},
		{-40, entity.UnitFahrenheit, "-40°F"},
		{21.5, entity.UnitCelsius, "22°C"},
		{-0.5, entity.UnitCelsius, "-1°C"},
		{-0.4, entity.UnitCelsius, "0°C"},
		{36.6, entity.UnitFahrenheit, "98°F"},
		{12.3, "", "12°C"},
		{1e19, entity.UnitCelsius, "10000000000000000000°C"},
		{-1e19, entity.UnitCelsius, "-10000000000000000000°C"},
		{1e19, entity.UnitFahrenheit, "18000000000000000000°F"},
	}

	for _, tt := range tests {
		if got := FormatTemperature(tt.celsius, tt.unit); got != tt.want {
			t.Errorf("FormatTemperature(%v, %q) = %q, want %q", tt.celsius, tt.unit, got, tt.want)
		}
	}
}

func TestFormatTemperatureKeepsSignOfHugeReadings(t *testing.T) {
	if got := FormatTemperature(1e300, entity.UnitCelsius); !strings.HasPrefix(got, "1000") || !strings.HasSuffix(got, "°C") {
		t.Errorf("FormatTemperature(1e300) = %q", got)
	}
	if got := FormatTemperature(-1e300, entity.UnitCelsius); !strings.HasPrefix(got, "-1000") {
		t.Errorf("FormatTemperature(-1e300) = %q", got)
	}
}
