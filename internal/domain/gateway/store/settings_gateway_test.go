package store

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/afero"
)

func newRedisGateway(t *testing.T) (*RedisSettingsGateway, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	host, portStr, _ := strings.Cut(server.Addr(), ":")
	port, _ := strconv.Atoi(portStr)

	client, err := redis.NewClient(redis.DefaultConfig().WithAddr(host, port))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSettingsGateway(client, "weatherSettings"), server
}

func TestSettingsGatewaysRoundTrip(t *testing.T) {
	redisGateway, _ := newRedisGateway(t)

	gateways := []SettingsGateway{
		NewMemorySettingsGateway(),
		NewFileSettingsGateway(afero.NewMemMapFs(), "/home/user/.go-weather/settings.json"),
		redisGateway,
	}

	for _, gateway := range gateways {
		t.Run(gateway.Name(), func(t *testing.T) {
			ctx := context.Background()

			empty, err := gateway.Load(ctx)
			if err != nil || empty != nil {
				t.Fatalf("initial Load = (%q, %v), want (nil, nil)", empty, err)
			}

			first := []byte(`{"theme":"dark","language":"ko","unit":"celsius","autoRefresh":true,"notifications":false}`)
			second := []byte(`{"theme":"dark","language":"ko","unit":"fahrenheit","autoRefresh":true,"notifications":false}`)
			for _, blob := range [][]byte{first, second} {
				if err := gateway.Save(ctx, blob); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
			}

			got, err := gateway.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if string(got) != string(second) {
				t.Errorf("Load = %s, want %s", got, second)
			}

			if health := gateway.Health(ctx); health.Status != model.StatusUp {
				t.Errorf("health = %+v", health)
			}
		})
	}
}

func TestFileSettingsGatewayLeavesNoTempFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	gateway := NewFileSettingsGateway(fs, "/data/settings.json")

	if err := gateway.Save(context.Background(), []byte(`{}`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := afero.ReadDir(fs, "/data")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "settings.json" {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Errorf("directory contains %v, want only settings.json", names)
	}
}

func TestFileSettingsGatewayReadOnly(t *testing.T) {
	gateway := NewFileSettingsGateway(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data/settings.json")

	if err := gateway.Save(context.Background(), []byte(`{}`)); err == nil {
		t.Fatal("Save on a read-only filesystem should fail")
	}
	if data, err := gateway.Load(context.Background()); err != nil || data != nil {
		t.Fatalf("Load = (%q, %v), want (nil, nil)", data, err)
	}
}

func TestRedisSettingsGatewayDown(t *testing.T) {
	gateway, server := newRedisGateway(t)
	server.Close()

	if err := gateway.Save(context.Background(), []byte(`{}`)); err == nil {
		t.Fatal("Save should fail when redis is down")
	}
	if health := gateway.Health(context.Background()); health.Status != model.StatusDown {
		t.Errorf("health = %+v, want DOWN", health)
	}
}
