package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultWindow      = 15 * time.Minute
	defaultMaxFailures = 10
)

// LoginLimiter bounds failed login attempts per account identifier using a
// fixed-window counter. Key format: login_fail:<lowercased email>
//
// An exceeded window surfaces to the user as the same generic credentials
// message, so the limiter leaks nothing about account existence.
type LoginLimiter struct {
	client      *redis.Client
	window      time.Duration
	maxFailures int64
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive window or limit fall back to the defaults.
func NewLoginLimiter(client *redis.Client, window time.Duration, maxFailures int64) *LoginLimiter {
	if window <= 0 {
		window = defaultWindow
	}
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	return &LoginLimiter{client: client, window: window, maxFailures: maxFailures}
}

// TooManyFailures reports whether the identifier is over the window limit.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n >= l.maxFailures, nil
}

// RecordFailure counts one failed attempt. The window TTL is set on the first
// failure and left untouched afterwards, making the window fixed rather than
// sliding.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_fail:" + strings.ToLower(strings.TrimSpace(email))
}
