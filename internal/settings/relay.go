package settings

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// changesChannel is the Redis pub/sub channel settings changes travel on.
const changesChannel = "settings:changes"

// Relay carries settings changes between running instances so subscribers
// on any instance see mutations made on another.
type Relay interface {
	// Publish broadcasts a change to every instance, including this one.
	Publish(ctx context.Context, change Change) error
	// Changes returns the stream of broadcast changes. The channel closes
	// when ctx ends.
	Changes(ctx context.Context) <-chan Change
}

// RedisRelay implements Relay on Redis pub/sub.
type RedisRelay struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisRelay(client *redis.Client, log *zap.Logger) *RedisRelay {
	return &RedisRelay{client: client, log: log}
}

func (r *RedisRelay) Publish(ctx context.Context, change Change) error {
	data, err := json.Marshal(change)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, changesChannel, data).Err()
}

// Changes subscribes to the settings channel and decodes incoming payloads.
// The subscription reconnects with capped backoff after transient Redis
// failures.
func (r *RedisRelay) Changes(ctx context.Context) <-chan Change {
	out := make(chan Change)
	go func() {
		defer close(out)
		wait := time.Second
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			err := r.receive(ctx, out)
			if err == nil || ctx.Err() != nil {
				return
			}
			r.log.Warn("settings relay subscription lost, reconnecting", zap.Error(err))
			time.Sleep(wait)
			wait *= 2
			if wait > 30*time.Second {
				wait = 30 * time.Second
			}
		}
	}()
	return out
}

func (r *RedisRelay) receive(ctx context.Context, out chan<- Change) error {
	sub := r.client.Subscribe(ctx, changesChannel)
	defer sub.Close()

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			return err
		}
		var change Change
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			r.log.Warn("dropping malformed settings change payload", zap.Error(err))
			continue
		}
		select {
		case out <- change:
		case <-ctx.Done():
			return nil
		}
	}
}
