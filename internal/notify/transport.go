package notify

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisTransport broadcasts events over Redis pub/sub.
type RedisTransport struct {
	client *redis.Client
}

func NewRedisTransport(addr string) *RedisTransport {
	return &RedisTransport{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (t *RedisTransport) Publish(ctx context.Context, topic string, payload []byte) error {
	return t.client.Publish(ctx, topic, payload).Err()
}

func (t *RedisTransport) Close() error {
	return t.client.Close()
}

// NoopTransport discards events; used when no broker is configured.
type NoopTransport struct{}

func (NoopTransport) Publish(context.Context, string, []byte) error {
	return nil
}
