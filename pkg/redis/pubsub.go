package redis

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher handles Redis publishing operations
type Publisher struct {
	client           *Client
	channelNamespace string
}

// NewPublisher creates a new publisher, channels are prefixed with namespace when it is not empty
func NewPublisher(client *Client, namespace string) *Publisher {
	return &Publisher{
		client:           client,
		channelNamespace: namespace,
	}
}

// buildChannelName constructs the full channel name using ChannelNamespace::channelName format
func (p *Publisher) buildChannelName(channel string) string {
	if p.channelNamespace != "" {
		return p.channelNamespace + "::" + channel
	}
	return channel
}

// PublishJSON publishes a JSON message to a channel and returns the number of receivers
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message interface{}) (int64, error) {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.client.rdb.Publish(ctx, p.buildChannelName(channel), jsonData).Result()
}
