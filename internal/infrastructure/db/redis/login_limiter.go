package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter counts login attempts per username in a fixed window.
// Key format: login_attempts:<username>
type LoginLimiter struct {
	client *redis.Client
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client, window time.Duration) *LoginLimiter {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{client: client, window: window}
}

// Hit increments the attempt counter for username and returns the new count.
// The window starts on the first attempt and is not extended by later ones.
func (l *LoginLimiter) Hit(ctx context.Context, username string) (int64, error) {
	key := l.key(username)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return n, fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return n, nil
}

func (l *LoginLimiter) key(username string) string {
	return "login_attempts:" + username
}
