package controller

import (
	"net/http"

	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"

	"github.com/labstack/echo/v4"
)

type I18nController struct {
	api *echo.Group
}

func NewI18nController(api *echo.Group) *I18nController {
	return &I18nController{api: api}
}

// InitI18nRoutes initializes translation routes
func (controller *I18nController) InitI18nRoutes() {
	controller.api.GET("/i18n", controller.Negotiate)
	controller.api.GET("/i18n/:lang", controller.GetTranslation)
}

// Negotiate godoc
// @Summary Get the best matching translation
// @Description Pick the supported language closest to the Accept-Language header, English otherwise
// @Tags i18n
// @Produce json
// @Param Accept-Language header string false "Preferred languages"
// @Success 200 {object} model.TranslationResponse "Translation dictionary"
// @Router /i18n [get]
func (controller *I18nController) Negotiate(c echo.Context) error {
	lang := catalog.MatchLanguage(c.Request().Header.Get("Accept-Language"))
	return c.JSON(http.StatusOK, translationResponse(lang, catalog.Translate(lang)))
}

// GetTranslation godoc
// @Summary Get a translation
// @Description Return the display strings of a supported language
// @Tags i18n
// @Produce json
// @Param lang path string true "Language code (en, ko, ja, zh)"
// @Success 200 {object} model.TranslationResponse "Translation dictionary"
// @Failure 404 {object} map[string]string "Unsupported language"
// @Router /i18n/{lang} [get]
func (controller *I18nController) GetTranslation(c echo.Context) error {
	lang := entity.Language(c.Param("lang"))
	translation, ok := catalog.Lookup(lang)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unsupported language"})
	}
	return c.JSON(http.StatusOK, translationResponse(lang, translation))
}

func translationResponse(lang entity.Language, translation catalog.Translation) model.TranslationResponse {
	return model.TranslationResponse{
		Language: lang,
		Locale:   translation.Locale.String(),
		Strings:  translation.Dictionary(),
	}
}
