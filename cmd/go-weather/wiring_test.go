package main

import (
	"testing"

	"go-weather/internal/domain/gateway/store"
	"go-weather/pkg/resource"
)

func TestSettingsStoreFallsBackToMemoryWhenDatabaseIsDown(t *testing.T) {
	resource.Set("app.settings.store", "postgres")
	resource.Set("app.db.host", "127.0.0.1")
	resource.Set("app.db.port", "1")
	t.Cleanup(func() { resource.Set("app.settings.store", "memory") })

	gateway, err := newSettingsStore(&lazyRedis{})
	if err != nil {
		t.Fatalf("unreachable database must not fail startup: %v", err)
	}
	if _, ok := gateway.(*store.MemorySettingsGateway); !ok {
		t.Fatalf("gateway = %T, want in-memory fallback", gateway)
	}
}

func TestSettingsStoreRejectsUnknownBackend(t *testing.T) {
	resource.Set("app.settings.store", "cassandra")
	t.Cleanup(func() { resource.Set("app.settings.store", "memory") })

	if _, err := newSettingsStore(&lazyRedis{}); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}
