package redis

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher handles Redis publishing operations
type Publisher struct {
	client    *Client
	namespace string
}

// NewPublisher creates a new publisher. Channels are prefixed with namespace when set.
func NewPublisher(client *Client, namespace string) *Publisher {
	return &Publisher{
		client:    client,
		namespace: namespace,
	}
}

// buildChannelName constructs the full channel name using namespace::channel format
func (p *Publisher) buildChannelName(channel string) string {
	if p.namespace != "" {
		return p.namespace + "::" + channel
	}
	return channel
}

// PublishJSON publishes a JSON message to a channel
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message interface{}) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.client.Publish(ctx, p.buildChannelName(channel), jsonData)
}
