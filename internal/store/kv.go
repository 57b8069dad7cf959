// Package store is the persistence layer: a minimal key-value contract
// backed by Redis, and the two record collections (journal entries and
// wellbeing reports) stored as whole JSON arrays under fixed keys.
package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Storage keys. Entries and reports are each one JSON array; the remaining
// keys hold scalar settings values.
const (
	KeyEntries  = "journal_entries"
	KeyReports  = "ryff_report_history"
	KeyLanguage = "language"
	KeyTheme    = "theme"
	KeyAPIKey   = "geminiKey"
)

// KV is the key-value collaborator the stores and settings are built on.
// Get reports a miss with found=false rather than an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// RedisKV implements KV on a Redis client. Values are stored without TTL;
// this is durable state, not a cache.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV wraps an already-connected Redis client.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
