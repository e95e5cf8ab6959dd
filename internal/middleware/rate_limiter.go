package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiterConfig defines the per-IP limit for the auth endpoints.
type RateLimiterConfig struct {
	MaxRequests int
	Window      time.Duration
	BlockTime   time.Duration
}

// RateLimiter throttles login/register attempts per client IP using a
// Redis sliding-window counter.
type RateLimiter struct {
	redis  *redis.Client
	config RateLimiterConfig
}

func NewRateLimiter(redisClient *redis.Client, config RateLimiterConfig) *RateLimiter {
	return &RateLimiter{redis: redisClient, config: config}
}

// Middleware returns the Gin handler enforcing the limit. Redis failures
// fail open: a broken limiter must not take down login.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := rl.check(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": int(retryAfter.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) check(ctx context.Context, ip string) (bool, time.Duration, error) {
	key := fmt.Sprintf("ratelimit:%s", ip)

	count, err := rl.redis.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		if err := rl.redis.Expire(ctx, key, rl.config.Window).Err(); err != nil {
			return false, 0, err
		}
	}

	if count > int64(rl.config.MaxRequests) {
		ttl, err := rl.redis.TTL(ctx, key).Result()
		if err != nil || ttl <= 0 {
			ttl = rl.config.Window
		}
		// Stretch the penalty once an IP keeps hammering past the limit.
		if count == int64(rl.config.MaxRequests)+1 && rl.config.BlockTime > ttl {
			if rl.redis.Expire(ctx, key, rl.config.BlockTime).Err() == nil {
				ttl = rl.config.BlockTime
			}
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
