package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRequestLoggerSetsRequestID(t *testing.T) {
	e := echo.New()
	SetupRequestLogger(e)
	e.GET("/go-weather/weather", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/go-weather/weather", nil))

	if recorder.Header().Get(echo.HeaderXRequestID) == "" {
		t.Error("response has no request id")
	}
}

func TestSkipQuietPaths(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/go-weather/health", want: true},
		{path: "/go-weather/swagger/index.html", want: true},
		{path: "/go-weather/weather", want: false},
		{path: "/go-weather/settings", want: false},
	}

	e := echo.New()
	for _, tt := range tests {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())
		if got := skipQuietPaths(c); got != tt.want {
			t.Errorf("skipQuietPaths(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
