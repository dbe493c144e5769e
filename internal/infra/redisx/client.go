package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Hold rate limit per user: rl:hold:{user_id}
	KeyHoldRateLimit = "rl:hold:%s"
)

func New(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

func Ping(ctx context.Context, rdb *redis.Client) error {
	return rdb.Ping(ctx).Err()
}
