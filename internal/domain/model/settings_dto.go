package model

import "go-weather/internal/domain/entity"

// SettingsPatch is a partial settings update, nil fields are left untouched.
type SettingsPatch struct {
	Theme         *entity.Theme    `json:"theme,omitempty"`
	Language      *entity.Language `json:"language,omitempty"`
	Unit          *entity.Unit     `json:"unit,omitempty"`
	AutoRefresh   *bool            `json:"autoRefresh,omitempty"`
	Notifications *bool            `json:"notifications,omitempty"`
}

// SettingsChange describes an applied update.
type SettingsChange struct {
	Previous entity.Settings
	Current  entity.Settings
}

// AffectsLookup reports whether the change alters how a lookup result is rendered.
func (c SettingsChange) AffectsLookup() bool {
	return c.Previous.Language != c.Current.Language || c.Previous.Unit != c.Current.Unit
}

// NotificationsEnabled reports whether the change switched notifications on.
func (c SettingsChange) NotificationsEnabled() bool {
	return !c.Previous.Notifications && c.Current.Notifications
}
