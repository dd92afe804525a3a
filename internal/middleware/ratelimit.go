package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/config"
)

// RateLimit applies a sliding-window limit per client IP, backed by a Redis
// sorted set. Fails open: with no Redis client, or when Redis errors,
// requests pass through so a cache outage never takes the API down.
func RateLimit(client *redis.Client, cfg config.RateLimitConfig, logger *logrus.Logger) gin.HandlerFunc {
	if client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())
		now := time.Now()
		windowStart := now.Add(-cfg.Window).UnixMilli()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		pipe := client.Pipeline()
		pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
		countCmd := pipe.ZCard(ctx, key)
		pipe.ZAdd(ctx, key, redis.Z{
			Score:  float64(now.UnixMilli()),
			Member: fmt.Sprintf("%d", now.UnixNano()),
		})
		pipe.Expire(ctx, key, cfg.Window)

		if _, err := pipe.Exec(ctx); err != nil {
			logger.WithError(err).Warn("Rate limit check failed, allowing request")
			c.Next()
			return
		}

		count := countCmd.Val()
		remaining := int64(cfg.Requests) - count - 1
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count >= int64(cfg.Requests) {
			logger.WithFields(logrus.Fields{
				"client_ip": c.ClientIP(),
				"limit":     cfg.Requests,
			}).Warn("Rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"code":    "RATE_LIMIT_EXCEEDED",
					"message": "Rate limit exceeded. Please try again later.",
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
