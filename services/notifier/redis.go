package notifier

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier implements Notifier using a Redis stream
type RedisNotifier struct {
	client    *redis.Client
	ctx       context.Context
	stream    string
	maxLength int
}

// NewRedisNotifier creates a new Redis notifier
func NewRedisNotifier(ctx context.Context, addr string, db int, stream string, maxLength int) *RedisNotifier {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	return &RedisNotifier{
		client:    client,
		ctx:       ctx,
		stream:    stream,
		maxLength: maxLength,
	}
}

// Notify publishes a run outcome message to the Redis stream.
// The stream is trimmed so stale outcomes never pile up.
func (n *RedisNotifier) Notify(message string) error {
	return n.client.XAdd(n.ctx, &redis.XAddArgs{
		Stream: n.stream,
		MaxLen: int64(n.maxLength),
		Approx: true,
		Values: map[string]interface{}{
			"message": message,
			"at":      time.Now().Format(time.RFC3339),
		},
	}).Err()
}

// Close closes the Redis connection
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
