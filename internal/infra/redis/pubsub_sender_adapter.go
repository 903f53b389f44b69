package redis

import (
	"context"

	"todo-api/internal/domain/gateway/queue"
	"todo-api/pkg/redis"
)

// PubSubSenderAdapter publishes domain messages on Redis pub/sub channels
type PubSubSenderAdapter struct {
	publisher *redis.Publisher
}

func NewPubSubSenderAdapter(client *redis.Client) queue.Sender {
	return &PubSubSenderAdapter{
		publisher: redis.NewPublisher(client, client.GetConfig().Namespace),
	}
}

func (adapter *PubSubSenderAdapter) SendMessage(ctx context.Context, channel string, body any) error {
	return adapter.publisher.PublishJSON(ctx, channel, body)
}
