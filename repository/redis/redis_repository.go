package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/esports-tournament/cmd/redis"
)

// Repository defines the Redis operations used to throttle OTP traffic.
// Without an initialized client every call is a permissive no-op.
type Repository interface {
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Delete(ctx context.Context, keys ...string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func OTPCooldownKey(phone string) string {
	return "otp:cooldown:" + phone
}

func OTPAttemptsKey(phone string) string {
	return "otp:attempts:" + phone
}

// SetNX stores the key only if it does not exist yet and reports whether it did.
func (r *redis) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	return client.SetNX(ctx, key, value, ttl).Result()
}

// IncrWithTTL increments a counter, starting its TTL on the first increment.
func (r *redis) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}

	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Delete removes keys from Redis
func (r *redis) Delete(ctx context.Context, keys ...string) error {
	client := redisclient.Get()
	if client == nil || len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
