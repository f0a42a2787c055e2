package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of a single rate limit check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// RateLimiter counts requests per key in fixed windows.
// Key format: <prefix>:<key>
type RateLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

// allowScript increments the window counter and makes sure it carries a
// TTL, in one round trip. A key found without a TTL gets one, so a counter
// can never outlive its window.
// Returns {count, pttl_ms}.
var allowScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {n, ttl}
`)

// Allow increments the counter for key and reports whether the request fits
// in the current window.
func (l *RateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	res, err := allowScript.Run(ctx, l.client, []string{l.key(key)}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit: %w", err)
	}
	if len(res) != 2 {
		return Decision{}, fmt.Errorf("rate limit: unexpected reply %v", res)
	}
	count, ttl := res[0], time.Duration(res[1])*time.Millisecond

	d := Decision{Limit: l.limit, ResetIn: l.window}
	if ttl > 0 {
		d.ResetIn = ttl
	}

	if count > int64(l.limit) {
		return d, nil
	}
	d.Allowed = true
	d.Remaining = l.limit - int(count)
	return d, nil
}

func (l *RateLimiter) key(key string) string {
	return fmt.Sprintf("%s:%s", l.prefix, key)
}
