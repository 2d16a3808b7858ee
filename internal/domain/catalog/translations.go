package catalog

import (
	"strings"
	"time"

	"go-weather/internal/domain/entity"

	"golang.org/x/text/language"
)

// Translation is the complete set of display strings for one language.
type Translation struct {
	Placeholder       string
	Humidity          string
	Wind              string
	ForecastTitle     string
	SearchPlaceholder string
	SearchBtn         string
	ErrorNotFound     string
	// NotificationTitle contains a {city} placeholder.
	NotificationTitle string
	// Weekdays are short day names indexed by time.Weekday.
	Weekdays [7]string
	// Locale is the date locale used for the language.
	Locale language.Tag
}

// Keys are the dictionary keys every language provides.
var Keys = []string{
	"placeholder",
	"humidity",
	"wind",
	"forecastTitle",
	"searchPlaceholder",
	"searchBtn",
	"errorNotFound",
	"notificationTitle",
}

var translations = map[entity.Language]Translation{
	entity.LanguageEnglish: {
		Placeholder:       "Search for a city to see weather",
		Humidity:          "Humidity",
		Wind:              "Wind",
		ForecastTitle:     "7-Day Forecast",
		SearchPlaceholder: "Enter city name...",
		SearchBtn:         "Search",
		ErrorNotFound:     "City not found.",
		NotificationTitle: "Weather in {city}",
		Weekdays:          [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Locale:            language.MustParse("en-US"),
	},
	entity.LanguageKorean: {
		Placeholder:       "도시명을 검색하여 날씨를 확인하세요",
		Humidity:          "습도",
		Wind:              "바람",
		ForecastTitle:     "7일 예보",
		SearchPlaceholder: "도시명을 입력하세요...",
		SearchBtn:         "검색",
		ErrorNotFound:     "도시를 찾을 수 없습니다.",
		NotificationTitle: "{city} 날씨",
		Weekdays:          [7]string{"일", "월", "화", "수", "목", "금", "토"},
		Locale:            language.MustParse("ko-KR"),
	},
	entity.LanguageJapanese: {
		Placeholder:       "都市名を入力して天気を確認",
		Humidity:          "湿度",
		Wind:              "風",
		ForecastTitle:     "7日間予報",
		SearchPlaceholder: "都市名を入力...",
		SearchBtn:         "検索",
		ErrorNotFound:     "都市が見つかりません。",
		NotificationTitle: "{city}の天気",
		Weekdays:          [7]string{"日", "月", "火", "水", "木", "金", "土"},
		Locale:            language.MustParse("ja-JP"),
	},
	entity.LanguageChinese: {
		Placeholder:       "输入城市名称查看天气",
		Humidity:          "湿度",
		Wind:              "风",
		ForecastTitle:     "7天预报",
		SearchPlaceholder: "输入城市名称...",
		SearchBtn:         "搜索",
		ErrorNotFound:     "未找到城市。",
		NotificationTitle: "{city}天气",
		Weekdays:          [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
		Locale:            language.MustParse("zh-CN"),
	},
}

// Lookup returns the translation for lang and whether lang is supported.
func Lookup(lang entity.Language) (Translation, bool) {
	t, ok := translations[lang]
	return t, ok
}

// Translate returns the translation for lang, English for unsupported codes.
func Translate(lang entity.Language) Translation {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[entity.LanguageEnglish]
}

// Dictionary returns the named display strings, one entry per Keys element.
func (t Translation) Dictionary() map[string]string {
	return map[string]string{
		"placeholder":       t.Placeholder,
		"humidity":          t.Humidity,
		"wind":              t.Wind,
		"forecastTitle":     t.ForecastTitle,
		"searchPlaceholder": t.SearchPlaceholder,
		"searchBtn":         t.SearchBtn,
		"errorNotFound":     t.ErrorNotFound,
		"notificationTitle": t.NotificationTitle,
	}
}

// WeatherIn renders the notification title for city.
func (t Translation) WeatherIn(city string) string {
	return strings.ReplaceAll(t.NotificationTitle, "{city}", city)
}

// Weekday returns the short day name of day.
func (t Translation) Weekday(day time.Weekday) string {
	return t.Weekdays[day]
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Korean,
	language.Japanese,
	language.Chinese,
})

// MatchLanguage picks the supported language closest to an Accept-Language header, English when nothing matches.
func MatchLanguage(acceptLanguage string) entity.Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return entity.LanguageEnglish
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return entity.LanguageEnglish
	}
	return entity.Languages[index]
}
