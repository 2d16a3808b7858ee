package main

import (
	"context"
	"fmt"
	"sync"

	"go-weather/internal/domain/gateway/notify"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/model"
	awsinfra "go-weather/internal/infra/aws"
	gorminfra "go-weather/internal/infra/database/gorm"
	redisinfra "go-weather/internal/infra/redis"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
	"go-weather/pkg/sqs"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// lazyRedis connects on first use so that redis is only required by the backends that need it
type lazyRedis struct {
	once   sync.Once
	client *redis.Client
	err    error
}

func (l *lazyRedis) get() (*redis.Client, error) {
	l.once.Do(func() {
		l.client, l.err = redisinfra.NewClient()
	})
	return l.client, l.err
}

func (l *lazyRedis) close() {
	if l.client != nil {
		_ = l.client.Close()
	}
}

func newSettingsStore(redisClient *lazyRedis) (store.SettingsGateway, error) {
	key := resource.GetStringOrDefault("app.settings.key", "weatherSettings")

	switch backend := resource.GetStringOrDefault("app.settings.store", "file"); backend {
	case "memory":
		return store.NewMemorySettingsGateway(), nil
	case "file":
		return store.NewFileSettingsGateway(afero.NewOsFs(), resource.GetString("app.settings.file-path")), nil
	case "redis":
		client, err := redisClient.get()
		if err != nil {
			return nil, err
		}
		return store.NewRedisSettingsGateway(client, key), nil
	case "postgres":
		db, err := gorminfra.Open()
		if err != nil {
			return memoryFallback("connect", err), nil
		}
		gateway := store.NewGormSettingsGateway(db, key)
		if err := gateway.Migrate(); err != nil {
			return memoryFallback("migrate", err), nil
		}
		return gateway, nil
	default:
		return nil, fmt.Errorf("unknown settings store %q", backend)
	}
}

// memoryFallback keeps the app running on in-memory settings when the database is unavailable
func memoryFallback(op string, err error) store.SettingsGateway {
	failure := &model.PersistenceError{Op: op, Err: err}
	log.Warn(msg.GetMessage("settings.persistence-failed", failure), zap.String("op", op))
	return store.NewMemorySettingsGateway()
}

func newNotifier(ctx context.Context, redisClient *lazyRedis) (notify.Notifier, error) {
	switch channel := resource.GetStringOrDefault("app.notification.channel", "log"); channel {
	case "log":
		return notify.NewLogNotifier(), nil
	case "redis":
		client, err := redisClient.get()
		if err != nil {
			return nil, err
		}
		return notify.NewRedisNotifier(client,
			resource.GetString("app.notification.redis-namespace"),
			resource.GetStringOrDefault("app.notification.redis-channel", "notifications"),
		), nil
	case "sqs":
		cfg, err := awsinfra.NewConfig(ctx)
		if err != nil {
			return nil, err
		}
		sender := sqs.NewSender(awsinfra.NewSQSClient(cfg))
		return notify.NewSQSNotifier(sender, resource.GetString("app.notification.queue-name")), nil
	default:
		return nil, fmt.Errorf("unknown notification channel %q", channel)
	}
}
