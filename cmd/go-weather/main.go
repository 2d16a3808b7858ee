package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-weather/configs"
	"go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/settings"
	"go-weather/internal/domain/usecase/weather"
	pkghttp "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title go-weather
// @version 1.0
// @description City weather lookup backed by the Open-Meteo geocoding and forecast APIs.
// @BasePath /go-weather
func main() {
	if err := configs.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer log.Sync()
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	redisClient := &lazyRedis{}
	defer redisClient.close()

	settingsStore, err := newSettingsStore(redisClient)
	if err != nil {
		log.Fatal(msg.GetMessage("app.wiring-failed", "settings store", err))
	}
	notifier, err := newNotifier(ctx, redisClient)
	if err != nil {
		log.Fatal(msg.GetMessage("app.wiring-failed", "notification channel", err))
	}

	// Init Gateways
	clientOptions := pkghttp.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.weather.http.connect-timeout"),
		ReadTimeout:       resource.GetDuration("app.weather.http.read-timeout"),
	}
	geocodingOptions, forecastOptions := clientOptions, clientOptions
	geocodingOptions.Logger = pkghttp.ZapLogger{Name: "geocoding"}
	forecastOptions.Logger = pkghttp.ZapLogger{Name: "forecast"}

	geocodingGateway := api.NewGeocodingGateway(resource.GetString("app.weather.geocoding.base-url"), geocodingOptions)
	forecastGateway := api.NewForecastGateway(
		resource.GetString("app.weather.forecast.base-url"),
		resource.GetIntOrDefault("app.weather.forecast-days", 7),
		forecastOptions,
	)

	// Init UseCase
	defaultCity := resource.GetStringOrDefault("app.weather.default-city", "Seoul")
	settingsUseCase := settings.NewSettingsUseCase(settingsStore, notifier)
	settingsUseCase.Load(ctx)
	weatherUseCase := weather.NewWeatherUseCase(defaultCity, geocodingGateway, forecastGateway, settingsUseCase, notifier)
	healthUseCase := health.NewHealthUseCase(settingsStore, notifier)

	// Init Controller
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetStringOrDefault("app.server.context-path", configs.Env.ContextPath)
	docs.SwaggerInfo.BasePath = contextPath
	apiGroup := e.Group(contextPath)
	apiGroup.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Routes
	controller.NewWeatherController(apiGroup, weatherUseCase).InitWeatherRoutes()
	controller.NewSettingsController(apiGroup, settingsUseCase, weatherUseCase).InitSettingsRoutes()
	controller.NewI18nController(apiGroup).InitI18nRoutes()
	controller.NewHealthController(apiGroup, healthUseCase).InitHealthRoutes()

	// Init Schedule
	weatherScheduler := schedule.NewWeatherScheduler(
		weatherUseCase,
		settingsUseCase,
		resource.GetStringOrDefault("app.weather.auto-refresh.cron", "@every 10m"),
		resource.GetDuration("app.weather.auto-refresh.timeout"),
	)
	if err := weatherScheduler.InitWeatherScheduleTasks(); err != nil {
		log.Fatal(msg.GetMessage("app.wiring-failed", "weather scheduler", err))
	}

	// Initial lookup
	initialCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	weatherUseCase.Lookup(initialCtx, defaultCity)
	cancel()

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(msg.GetMessage("app.wiring-failed", "http server", err))
		}
	}()
	log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shut down http server: %v", err)
	}
	weatherScheduler.Stop()
	weatherUseCase.Wait()
	log.Info(msg.GetMessage("app.stopped", configs.Env.ApplicationName))
}
