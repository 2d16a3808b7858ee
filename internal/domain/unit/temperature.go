// Package unit renders temperatures in the user's preferred unit.
package unit

import (
	"strconv"

	"go-weather/internal/domain/entity"
	"go-weather/pkg/util/numberutils"
)

// ToFahrenheit converts a Celsius reading.
func ToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// Convert returns the rounded temperature in unit. Rounding is half away from zero.
// Any unit other than fahrenheit is treated as celsius.
func Convert(celsius float64, unit entity.Unit) float64 {
	if unit == entity.UnitFahrenheit {
		return numberutils.Round(ToFahrenheit(celsius))
	}
	return numberutils.Round(celsius)
}

// Symbol returns the glyph appended to a temperature.
func Symbol(unit entity.Unit) string {
	if unit == entity.UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

// FormatTemperature renders celsius as e.g. "23°F" for the given unit.
func FormatTemperature(celsius float64, unit entity.Unit) string {
	return strconv.FormatFloat(Convert(celsius, unit), 'f', 0, 64) + Symbol(unit)
}
