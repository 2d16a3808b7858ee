package notify

import (
	"context"
	"fmt"
	"strconv"

	"go-weather/internal/domain/model"
	"go-weather/pkg/sqs"
)

// SQSNotifier sends notifications to a queue.
type SQSNotifier struct {
	sender    *sqs.Sender
	queueName string
	state     *permissionState
}

var _ Notifier = (*SQSNotifier)(nil)

func NewSQSNotifier(sender *sqs.Sender, queueName string) *SQSNotifier {
	return &SQSNotifier{
		sender:    sender,
		queueName: queueName,
		state:     newPermissionState(),
	}
}

func (n *SQSNotifier) Name() string {
	return "sqs"
}

func (n *SQSNotifier) Permission() Permission {
	return n.state.get()
}

// RequestPermission is granted when the queue URL can be resolved.
func (n *SQSNotifier) RequestPermission(ctx context.Context) Permission {
	return n.state.request(ctx, func(ctx context.Context) error {
		_, err := n.sender.QueueURL(ctx, n.queueName)
		return err
	})
}

func (n *SQSNotifier) Notify(ctx context.Context, notification Notification) error {
	if n.Permission() != PermissionGranted {
		return ErrPermissionNotGranted
	}
	attributes := map[string]string{
		"city":     notification.City,
		"sequence": strconv.FormatUint(notification.Sequence, 10),
	}
	if _, err := n.sender.SendMessage(ctx, n.queueName, notification, attributes); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

func (n *SQSNotifier) Health(ctx context.Context) model.ComponentHealthStatus {
	_, err := n.sender.QueueURL(ctx, n.queueName)
	return healthStatus(n.Name(), n.Permission(), err)
}
