package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/hotel_analytics/config"
	"github.com/mmdatafocus/hotel_analytics/utils"
	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:"

// RateLimiter is a fixed-window request counter per client ip.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRateLimiter(client *redis.Client, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// NewRateLimiterFromEnv reads RATE_LIMIT_MAX_REQUESTS (default 600) and
// RATE_LIMIT_WINDOW_SECONDS (default 60).
func NewRateLimiterFromEnv(client *redis.Client) *RateLimiter {
	limit := config.IntFromEnv("RATE_LIMIT_MAX_REQUESTS", 600)
	if limit <= 0 {
		limit = 600
	}
	windowSec := config.IntFromEnv("RATE_LIMIT_WINDOW_SECONDS", 60)
	if windowSec <= 0 {
		windowSec = 60
	}
	return NewRateLimiter(client, int64(limit), time.Duration(windowSec)*time.Second)
}

func (rl *RateLimiter) key(c *gin.Context) string {
	ip, ok := utils.GetClientIPFromContext(c.Request.Context())
	if !ok || ip == "" {
		ip = c.ClientIP()
	}
	return rateLimitPrefix + ip
}

// Middleware returns Handle as a gin handler.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return rl.Handle
}

// Handle counts the request and aborts with 429 once the window's limit is exceeded.
func (rl *RateLimiter) Handle(c *gin.Context) {
	ctx := c.Request.Context()
	key := rl.key(c)

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	// first hit opens the window
	if count == 1 {
		if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
	}

	if count > rl.limit {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": fmt.Sprintf("Rate limit exceeded. Try again in %d seconds", int(rl.window.Seconds())),
		})
		return
	}

	c.Next()
}
