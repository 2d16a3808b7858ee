package redis

import (
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

// NewClient creates the redis client from the app.redis properties
func NewClient() (*redis.Client, error) {
	config := redis.DefaultConfig().
		WithAddr(
			resource.GetStringOrDefault("app.redis.host", "localhost"),
			resource.GetIntOrDefault("app.redis.port", 6379),
		).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetIntOrDefault("app.redis.database", 0))

	if timeout := resource.GetDuration("app.redis.dial-timeout"); timeout > 0 {
		config = config.WithDialTimeout(timeout)
	}
	return redis.NewClient(config)
}
