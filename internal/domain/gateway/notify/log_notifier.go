package notify

import (
	"context"
	"errors"

	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

var ErrPermissionNotGranted = errors.New("notification permission not granted")

// LogNotifier writes notifications to the application log. Its permission request always succeeds.
type LogNotifier struct {
	state *permissionState
}

var _ Notifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{state: newPermissionState()}
}

func (n *LogNotifier) Name() string {
	return "log"
}

func (n *LogNotifier) Permission() Permission {
	return n.state.get()
}

func (n *LogNotifier) RequestPermission(ctx context.Context) Permission {
	return n.state.request(ctx, func(context.Context) error { return nil })
}

func (n *LogNotifier) Notify(_ context.Context, notification Notification) error {
	if n.Permission() != PermissionGranted {
		return ErrPermissionNotGranted
	}
	log.Info(msg.GetMessage("notification.sent", n.Name(), notification.Title),
		zap.String("body", notification.Body),
		zap.String("icon", notification.Icon),
		zap.Uint64("sequence", notification.Sequence),
	)
	return nil
}

func (n *LogNotifier) Health(context.Context) model.ComponentHealthStatus {
	return healthStatus(n.Name(), n.Permission(), nil)
}
