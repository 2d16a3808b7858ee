package entity

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageKorean   Language = "ko"
	LanguageJapanese Language = "ja"
	LanguageChinese  Language = "zh"
)

// Languages lists every supported language in display order.
var Languages = []Language{LanguageEnglish, LanguageKorean, LanguageJapanese, LanguageChinese}

func (l Language) Valid() bool {
	for _, supported := range Languages {
		if l == supported {
			return true
		}
	}
	return false
}

type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

func (u Unit) Valid() bool {
	return u == UnitCelsius || u == UnitFahrenheit
}

// Settings holds the user preferences. It is always fully populated.
type Settings struct {
	Theme         Theme    `json:"theme"`
	Language      Language `json:"language"`
	Unit          Unit     `json:"unit"`
	AutoRefresh   bool     `json:"autoRefresh"`
	Notifications bool     `json:"notifications"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:         ThemeLight,
		Language:      LanguageEnglish,
		Unit:          UnitCelsius,
		AutoRefresh:   true,
		Notifications: false,
	}
}
