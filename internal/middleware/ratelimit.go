// Package middleware carries the cross-cutting HTTP concerns: per-IP
// rate limiting backed by Redis and structured request logging.
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adityawrm/mindbloom-backend/internal/config"
	"github.com/adityawrm/mindbloom-backend/pkg/clientip"
)

const rateLimitKeyPrefix = "ratelimit:"

// counterStore is the slice of Redis the limiter needs.
type counterStore interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}

type redisCounter struct {
	client *redis.Client
}

func (c redisCounter) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

func (c redisCounter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

func (c redisCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, key).Result()
}

// RateLimit enforces a fixed-window per-IP request cap using Redis
// INCR with a TTL on first hit. A Redis failure fails open: the request
// goes through unthrottled.
func RateLimit(rdb *redis.Client, cfg config.RateLimiterConfig) func(http.Handler) http.Handler {
	return rateLimitWith(redisCounter{client: rdb}, cfg)
}

func rateLimitWith(store counterStore, cfg config.RateLimiterConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			key := rateLimitKeyPrefix + clientip.RealClientIP(r)
			ctx := r.Context()

			count, err := store.Incr(ctx, key)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				store.Expire(ctx, key, cfg.Window)
			}

			// The window opened when the key was created, so the reset
			// time comes from the key's remaining TTL, not from now.
			reset := cfg.Window
			if ttl, err := store.TTL(ctx, key); err == nil && ttl > 0 {
				reset = ttl
			}

			if count > int64(cfg.MaxRequests) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(reset.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"success":false,"message":"Too many requests. Please slow down."}`))
				return
			}

			remaining := int64(cfg.MaxRequests) - count
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}
