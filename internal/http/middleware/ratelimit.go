package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/asketsystem/lifebook/internal/http/response"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

const rateLimitMessage = "Too many requests from this IP, please try again later."

// Counter increments a request counter that expires with its window.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) Counter {
	return &redisCounter{rdb: rdb}
}

func (rc *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := rc.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimit enforces a fixed window per client IP. With no counter (redis
// not configured) or a non-positive max it becomes a pass-through. Counter
// errors fail open: content availability beats strict limiting here.
func RateLimit(log *logger.Logger, counter Counter, window time.Duration, max int) gin.HandlerFunc {
	if counter == nil || max <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiterLog := log.With("middleware", "RateLimit")

	return func(c *gin.Context) {
		bucket := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), bucket)

		count, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			limiterLog.Warn("Rate limit counter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if count > int64(max) {
			response.AbortError(c, http.StatusTooManyRequests, rateLimitMessage)
			return
		}
		c.Next()
	}
}
