package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/settings"
	"go-weather/internal/domain/usecase/weather"

	"github.com/labstack/echo/v4"
)

type SettingsController struct {
	api            *echo.Group
	useCase        settings.UseCase
	weatherUseCase weather.UseCase
}

func NewSettingsController(api *echo.Group, useCase settings.UseCase, weatherUseCase weather.UseCase) *SettingsController {
	return &SettingsController{api: api, useCase: useCase, weatherUseCase: weatherUseCase}
}

// InitSettingsRoutes initializes settings routes
func (controller *SettingsController) InitSettingsRoutes() {
	controller.api.GET("/settings", controller.GetSettings)
	controller.api.PATCH("/settings", controller.UpdateSettings)
}

// GetSettings godoc
// @Summary Get settings
// @Description Return the current user preferences
// @Tags settings
// @Produce json
// @Success 200 {object} entity.Settings "Current settings"
// @Router /settings [get]
func (controller *SettingsController) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Get())
}

// UpdateSettings godoc
// @Summary Update settings
// @Description Merge a partial update into the settings and persist them. A language or unit change re-renders the displayed weather.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body model.SettingsPatch true "Fields to change"
// @Success 200 {object} model.SettingsResponse "Updated settings"
// @Failure 400 {object} map[string]string "Invalid request body or setting value"
// @Router /settings [patch]
func (controller *SettingsController) UpdateSettings(c echo.Context) error {
	var patch model.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	change, err := controller.useCase.Update(c.Request().Context(), patch)
	if errors.Is(err, model.ErrInvalidSetting) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	response := model.SettingsResponse{Settings: change.Current}
	if latest, ok := controller.weatherUseCase.Latest(); ok && !latest.IsError() && change.AffectsLookup() {
		refreshed := controller.weatherUseCase.Refresh(c.Request().Context())
		response.Weather = &refreshed
	}
	return c.JSON(http.StatusOK, response)
}
