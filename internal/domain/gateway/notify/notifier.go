package notify

import (
	"context"
	"sync"
	"time"

	"go-weather/internal/domain/model"
)

// Permission mirrors the three states a notification channel can be in.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Notification is the payload emitted after a successful lookup.
type Notification struct {
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Icon     string    `json:"icon"`
	City     string    `json:"city"`
	Sequence uint64    `json:"sequence"`
	SentAt   time.Time `json:"sentAt"`
}

// Notifier delivers notifications over one channel.
type Notifier interface {
	Name() string
	// Permission returns the current state without asking again.
	Permission() Permission
	// RequestPermission asks the channel once, later calls return the stored answer.
	RequestPermission(ctx context.Context) Permission
	Notify(ctx context.Context, notification Notification) error
	Health(ctx context.Context) model.ComponentHealthStatus
}

// permissionState keeps the answer of the first permission request.
type permissionState struct {
	mu         sync.Mutex
	permission Permission
}

func newPermissionState() *permissionState {
	return &permissionState{permission: PermissionDefault}
}

func (s *permissionState) get() Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission
}

// request runs probe only while the state is still default.
func (s *permissionState) request(ctx context.Context, probe func(ctx context.Context) error) Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.permission != PermissionDefault {
		return s.permission
	}
	if err := probe(ctx); err != nil {
		s.permission = PermissionDenied
	} else {
		s.permission = PermissionGranted
	}
	return s.permission
}

func healthStatus(name string, permission Permission, err error) model.ComponentHealthStatus {
	details := map[string]string{
		"channel":    name,
		"permission": string(permission),
	}
	if err != nil {
		details["message"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
