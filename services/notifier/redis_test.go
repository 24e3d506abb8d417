package notifier

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// This test requires a running Redis instance
// If Redis is not available, the test will be skipped
func TestRedisNotifier(t *testing.T) {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   0,
	})
	defer client.Close()

	// Test if Redis is available
	if _, err := client.Ping(ctx).Result(); err != nil {
		t.Skip("Redis is not available, skipping test")
	}

	stream := "test_scraper_results"
	client.Del(ctx, stream)

	n := NewRedisNotifier(ctx, "localhost:6379", 0, stream, 10)
	defer n.Close()

	err := n.Notify("✅ 4 prix récupérés pour 2 cottages × 2 durées !")
	assert.NoError(t, err)

	// The outcome is readable once from the stream
	messages, err := client.XRange(ctx, stream, "-", "+").Result()
	assert.NoError(t, err)
	assert.Equal(t, 1, len(messages))
	assert.Equal(t, "✅ 4 prix récupérés pour 2 cottages × 2 durées !", messages[0].Values["message"])
	assert.NotEmpty(t, messages[0].Values["at"])

	client.Del(ctx, stream)
}
