package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Sliding window over a sorted set. KEYS[1]=key, ARGV: now(ms), window(ms),
// limit, member. Returns the request count including this one, or -1 when
// the window is full.
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
if count >= limit then
  return -1
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return count + 1
`)

type RateLimiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
}

func NewRateLimiter(rdb redis.Scripter, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
	}
}

// Allow records one request for subject and reports whether it fits in the
// current window.
func (l *RateLimiter) Allow(ctx context.Context, subject string) (bool, error) {
	now := time.Now()
	key := fmt.Sprintf(KeyHoldRateLimit, subject)
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())

	res, err := slidingWindowScript.Run(ctx, l.rdb, []string{key},
		now.UnixMilli(), l.window.Milliseconds(), l.limit, member).Int()
	if err != nil {
		return false, err
	}
	return res >= 0, nil
}
