package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 24 * time.Hour

// SessionKV persists session keys in Redis. Every write refreshes the key's
// expiry so abandoned sessions disappear on their own.
type SessionKV struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionKV wraps client. A non-positive ttl uses defaultSessionTTL.
func NewSessionKV(client *redis.Client, ttl time.Duration) *SessionKV {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionKV{client: client, ttl: ttl}
}

func (kv *SessionKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := kv.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session get %s: %w", key, err)
	}
	return v, true, nil
}

func (kv *SessionKV) Set(ctx context.Context, key, value string) error {
	if err := kv.client.Set(ctx, key, value, kv.ttl).Err(); err != nil {
		return fmt.Errorf("session set %s: %w", key, err)
	}
	return nil
}

func (kv *SessionKV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := kv.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
