package model

import "go-weather/internal/domain/entity"

// SettingsResponse is returned after a settings update. Weather is set when the
// update re-rendered the displayed result.
type SettingsResponse struct {
	Settings entity.Settings `json:"settings"`
	Weather  *DisplayResult  `json:"weather,omitempty"`
}

// TranslationResponse is the dictionary of one language.
type TranslationResponse struct {
	Language entity.Language   `json:"language"`
	Locale   string            `json:"locale"`
	Strings  map[string]string `json:"strings"`
}
