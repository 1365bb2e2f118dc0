package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FormLimiter counts public form submissions per client in fixed windows.
// Key format: ratelimit:<form>:<client>:<window_start_unix>
type FormLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewFormLimiter allows limit submissions per client and form in each window.
func NewFormLimiter(client *redis.Client, limit int, window time.Duration) *FormLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &FormLimiter{client: client, limit: int64(limit), window: window, now: time.Now}
}

// Allow records one submission and reports whether it is within the limit.
func (l *FormLimiter) Allow(ctx context.Context, form, client string) (bool, error) {
	key := l.key(form, client)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit: %w", err)
	}
	return incr.Val() <= l.limit, nil
}

func (l *FormLimiter) key(form, client string) string {
	start := l.now().Truncate(l.window).Unix()
	return fmt.Sprintf("ratelimit:%s:%s:%d", form, client, start)
}
