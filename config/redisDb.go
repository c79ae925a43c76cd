package config

import (
	"context"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

var rdb atomic.Pointer[redis.Client]

func GetRedisDB() *redis.Client {
	return rdb.Load()
}

// ConnectRedisWithRetry connects and sets the global Redis client.
// Only the rate limiter needs redis, so main() calls this when RATE_LIMIT_ENABLED is set.
// It returns nil once ctx is done.
func ConnectRedisWithRetry(ctx context.Context) *redis.Client {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		log.Printf("REDIS_ADDRESS not set; defaulting to %s", redisAddr)
	}

	var attempt int
	for {
		attempt++
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0, // use default DB
			PoolSize: 100,
		})
		err := client.Ping(ctx).Err()
		if err == nil {
			rdb.Store(client)
			log.Printf("connected to redis (attempt=%d addr=%s)", attempt, redisAddr)
			return client
		}
		_ = client.Close()
		if ctx.Err() != nil {
			log.Printf("giving up on redis (addr=%s): %v", redisAddr, ctx.Err())
			return nil
		}
		sleep := time.Second * time.Duration(1<<min(attempt, 5))
		if sleep > 30*time.Second {
			sleep = 30 * time.Second
		}
		log.Printf("failed to connect redis (attempt=%d addr=%s): %v; retrying in %s", attempt, redisAddr, err, sleep)
		select {
		case <-ctx.Done():
			log.Printf("giving up on redis (addr=%s): %v", redisAddr, ctx.Err())
			return nil
		case <-time.After(sleep):
		}
	}
}
