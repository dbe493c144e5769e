package bootstrap

import (
	"context"
	"log/slog"

	"booking-core/internal/infra/notify"
	"booking-core/internal/pkg/config"
	"booking-core/internal/worker"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewPushSender,
		NewEventPublisher,
	),
)

func NewPushSender(cfg config.Config, logger *slog.Logger) worker.PushSender {
	if cfg.Notify.PushURL == "" {
		logger.Info("push channel not configured")
		return nil
	}
	return notify.NewPushClient(cfg.Notify.PushURL, cfg.Notify.PushToken, cfg.Notify.PushTimeout)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) worker.EventPublisher {
	if len(cfg.Notify.KafkaBrokers) == 0 {
		logger.Info("kafka not configured, order events are not published")
		return nil
	}

	pub := notify.NewEventPublisher(cfg.Notify.KafkaBrokers, cfg.Notify.KafkaTopic)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
