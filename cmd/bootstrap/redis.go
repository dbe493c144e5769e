package bootstrap

import (
	"context"
	"log/slog"

	"booking-core/internal/handler/middleware"
	"booking-core/internal/infra/redisx"
	"booking-core/internal/pkg/config"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewHoldRateLimiter,
	),
)

// NewHoldRateLimiter returns nil when REDIS_ADDR is unset, which disables
// hold throttling.
func NewHoldRateLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) middleware.RateLimiter {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured, hold rate limiting disabled")
		return nil
	}

	rdb := redisx.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// The limiter fails open, so an unreachable Redis is not fatal.
				logger.Warn("redis ping failed", slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return redisx.NewRateLimiter(rdb, cfg.Redis.HoldRateLimit, cfg.Redis.HoldRateWin)
}
