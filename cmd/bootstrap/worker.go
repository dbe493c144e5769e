package bootstrap

import (
	"context"
	"log/slog"

	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/shared"
	"booking-core/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewExpirySweeper,
		NewNotificationDispatcher,
	),
	fx.Invoke(runWorkers),
)

func NewExpirySweeper(cfg config.Config, orders commands.OrderCommands) *worker.ExpirySweeper {
	return worker.NewExpirySweeper(orders, cfg.Sweeper.Interval, cfg.Sweeper.ReconcileEvery)
}

func NewNotificationDispatcher(
	cfg config.Config,
	uow shared.UnitOfWork,
	push worker.PushSender,
	events worker.EventPublisher,
	clk clock.Clock,
) *worker.NotificationDispatcher {
	return worker.NewNotificationDispatcher(uow, push, events, worker.DispatcherConfig{
		Interval:    cfg.Notify.DispatchInterval,
		BatchSize:   cfg.Notify.BatchSize,
		MaxAttempts: cfg.Notify.MaxAttempts,
	}, clk)
}

func runWorkers(
	lc fx.Lifecycle,
	cfg config.Config,
	sweeper *worker.ExpirySweeper,
	dispatcher *worker.NotificationDispatcher,
	logger *slog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Sweeper.Enabled {
				go sweeper.Start(ctx)
			} else {
				logger.Info("expiry sweeper disabled")
			}
			go dispatcher.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
