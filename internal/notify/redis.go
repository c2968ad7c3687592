package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"fusion-site/models"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
)

// RedisNotifier publishes contact messages on a Redis pub/sub channel.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	breaker *gobreaker.CircuitBreaker[any]
}

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		breaker: newBreaker("redis-notify"),
	}
}

func (n *RedisNotifier) Name() string { return "redis" }

func (n *RedisNotifier) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	payload, err := json.Marshal(newEnvelope(msg))
	if err != nil {
		return fmt.Errorf("marshal contact %s: %w", msg.ID, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	_, err = n.breaker.Execute(func() (any, error) {
		return n.client.Publish(ctx, n.channel, string(payload)).Result()
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", n.channel, err)
	}
	return nil
}
