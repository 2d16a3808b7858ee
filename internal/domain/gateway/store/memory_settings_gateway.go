package store

import (
	"context"
	"sync"

	"go-weather/internal/domain/model"
)

// MemorySettingsGateway keeps the blob in process memory only.
type MemorySettingsGateway struct {
	mu   sync.RWMutex
	data []byte
}

var _ SettingsGateway = (*MemorySettingsGateway)(nil)

func NewMemorySettingsGateway() *MemorySettingsGateway {
	return &MemorySettingsGateway{}
}

func (gateway *MemorySettingsGateway) Load(context.Context) ([]byte, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()
	if gateway.data == nil {
		return nil, nil
	}
	return append([]byte(nil), gateway.data...), nil
}

func (gateway *MemorySettingsGateway) Save(_ context.Context, data []byte) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	gateway.data = append([]byte(nil), data...)
	return nil
}

func (gateway *MemorySettingsGateway) Health(context.Context) model.ComponentHealthStatus {
	return upStatus(map[string]string{"backend": gateway.Name()})
}

func (gateway *MemorySettingsGateway) Name() string {
	return "memory"
}
