package store

import (
	"context"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

// RedisSettingsGateway stores the blob as a plain string value without expiration.
type RedisSettingsGateway struct {
	client *redis.Client
	key    string
}

var _ SettingsGateway = (*RedisSettingsGateway)(nil)

func NewRedisSettingsGateway(client *redis.Client, key string) *RedisSettingsGateway {
	return &RedisSettingsGateway{client: client, key: key}
}

func (gateway *RedisSettingsGateway) Load(ctx context.Context) ([]byte, error) {
	return gateway.client.GetBytes(ctx, gateway.key)
}

func (gateway *RedisSettingsGateway) Save(ctx context.Context, data []byte) error {
	return gateway.client.Set(ctx, gateway.key, data, 0)
}

func (gateway *RedisSettingsGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.client.HealthCheck(ctx)
	details := check.Details
	details["backend"] = gateway.Name()
	details["key"] = gateway.key

	if check.Status != redis.StatusUp {
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return upStatus(details)
}

func (gateway *RedisSettingsGateway) Name() string {
	return "redis"
}
