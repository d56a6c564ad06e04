// Package idempotency guards mutating flows against concurrent duplicates.
//
// The guard holds a short-lived redis lock for the duration of one operation
// and releases it on completion, so a retried request after the first one
// finishes goes back through normal business rules instead of being memoized.
package idempotency

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrInFlight is returned when the same operation is already running.
var ErrInFlight = errors.New("operation already in progress")

const defaultLockDuration = time.Minute

// Guard serializes an operation identified by key.
type Guard interface {
	Exec(ctx context.Context, key string, fn func(context.Context) error) error
}

// RedisGuard implements Guard on top of a redis SetNX lock.
type RedisGuard struct {
	client       *redis.Client
	prefix       string
	lockDuration time.Duration
}

// Option customizes a RedisGuard.
type Option func(*RedisGuard)

// WithLockDuration overrides the lock TTL used as a crash backstop.
func WithLockDuration(d time.Duration) Option {
	return func(g *RedisGuard) {
		if d > 0 {
			g.lockDuration = d
		}
	}
}

// New constructs a RedisGuard.
func New(client *redis.Client, opts ...Option) *RedisGuard {
	g := &RedisGuard{
		client:       client,
		prefix:       "inflight:",
		lockDuration: defaultLockDuration,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Exec runs fn while holding the lock for key. A second caller with the same
// key gets ErrInFlight until the first completes. The TTL only bounds the lock
// lifetime when the process dies before releasing it.
func (g *RedisGuard) Exec(ctx context.Context, key string, fn func(context.Context) error) error {
	fk := g.prefix + key

	acquired, err := g.client.SetNX(ctx, fk, "1", g.lockDuration).Result()
	if err != nil {
		return err
	}
	if !acquired {
		return ErrInFlight
	}

	defer func() {
		if err := g.client.Del(context.WithoutCancel(ctx), fk).Err(); err != nil {
			slog.WarnContext(ctx, "failed to release in-flight lock", "key", fk, "error", err)
		}
	}()

	return fn(ctx)
}
