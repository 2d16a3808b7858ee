package notify

import (
	"context"
	"fmt"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

// RedisNotifier publishes notifications as JSON on a pub/sub channel.
type RedisNotifier struct {
	client    *redis.Client
	publisher *redis.Publisher
	channel   string
	state     *permissionState
}

var _ Notifier = (*RedisNotifier)(nil)

func NewRedisNotifier(client *redis.Client, namespace, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:    client,
		publisher: redis.NewPublisher(client, namespace),
		channel:   channel,
		state:     newPermissionState(),
	}
}

func (n *RedisNotifier) Name() string {
	return "redis"
}

func (n *RedisNotifier) Permission() Permission {
	return n.state.get()
}

// RequestPermission is granted when the server answers a ping.
func (n *RedisNotifier) RequestPermission(ctx context.Context) Permission {
	return n.state.request(ctx, n.client.Ping)
}

func (n *RedisNotifier) Notify(ctx context.Context, notification Notification) error {
	if n.Permission() != PermissionGranted {
		return ErrPermissionNotGranted
	}
	if _, err := n.publisher.PublishJSON(ctx, n.channel, notification); err != nil {
		return fmt.Errorf("failed to publish notification on %s: %w", n.channel, err)
	}
	return nil
}

func (n *RedisNotifier) Health(ctx context.Context) model.ComponentHealthStatus {
	return healthStatus(n.Name(), n.Permission(), n.client.Ping(ctx))
}
