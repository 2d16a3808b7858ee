package controller

import (
	"net/http"
	"strings"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.Lookup)
	controller.api.GET("/weather/latest", controller.Latest)
	controller.api.POST("/weather/refresh", controller.Refresh)
}

// Lookup godoc
// @Summary Look up the weather of a city
// @Description Geocode the city, fetch current conditions and the daily forecast, and render them with the current settings
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} model.DisplayResult "Rendered weather"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 404 {object} model.DisplayResult "Localized not-found message"
// @Router /weather [get]
func (controller *WeatherController) Lookup(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "city is required"})
	}

	result := controller.useCase.Lookup(c.Request().Context(), city)
	return c.JSON(statusOf(result), result)
}

// Latest godoc
// @Summary Get the displayed weather
// @Description Return the newest committed lookup result
// @Tags weather
// @Produce json
// @Success 200 {object} model.DisplayResult "Latest result"
// @Success 204 "Nothing looked up yet"
// @Router /weather/latest [get]
func (controller *WeatherController) Latest(c echo.Context) error {
	result, ok := controller.useCase.Latest()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, result)
}

// Refresh godoc
// @Summary Refresh the displayed weather
// @Description Repeat the last lookup, or look up the default city
// @Tags weather
// @Produce json
// @Success 200 {object} model.DisplayResult "Rendered weather"
// @Failure 404 {object} model.DisplayResult "Localized not-found message"
// @Router /weather/refresh [post]
func (controller *WeatherController) Refresh(c echo.Context) error {
	result := controller.useCase.Refresh(c.Request().Context())
	return c.JSON(statusOf(result), result)
}

func statusOf(result model.DisplayResult) int {
	if result.IsError() {
		return http.StatusNotFound
	}
	return http.StatusOK
}
