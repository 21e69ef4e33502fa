package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the redis server that backs the pending-signup cache.
// The connection is retried a few times so a slow redis container does not
// kill the process on boot.
func InitRedis(addr string) (*redis.Client, error) {
	const maxRetries = 5
	retryDelay := time.Second * 5

	var client *redis.Client
	var err error
	for i := 0; i < maxRetries; i++ {
		client = redis.NewClient(&redis.Options{
			Network: "tcp",
			Addr:    addr,
			DB:      0,
		})

		_, err = client.Ping(context.Background()).Result()
		if err == nil {
			return client, nil
		}
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, err)
}
