package worker

import (
	"context"
	"log/slog"
	"time"

	"booking-core/internal/domain/order"
)

type OrderMaintenance interface {
	ExpireStale(ctx context.Context, scope order.ExpiryScope) (int, error)
	ReconcileLedger(ctx context.Context) (int, error)
}

// ExpirySweeper reclaims lapsed holds on a fixed interval so capacity frees
// up even when nobody touches the affected units. Every reconcileEvery ticks
// it also recomputes the committed counters.
type ExpirySweeper struct {
	orders         OrderMaintenance
	interval       time.Duration
	reconcileEvery int
	ticks          int
}

func NewExpirySweeper(orders OrderMaintenance, interval time.Duration, reconcileEvery int) *ExpirySweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpirySweeper{
		orders:         orders,
		interval:       interval,
		reconcileEvery: reconcileEvery,
	}
}

func (w *ExpirySweeper) Start(ctx context.Context) {
	slog.Info("starting expiry sweeper", slog.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				slog.Error("expiry sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}

func (w *ExpirySweeper) RunOnce(ctx context.Context) error {
	if _, err := w.orders.ExpireStale(ctx, order.GlobalScope()); err != nil {
		return err
	}

	w.ticks++
	if w.reconcileEvery <= 0 || w.ticks%w.reconcileEvery != 0 {
		return nil
	}
	adjusted, err := w.orders.ReconcileLedger(ctx)
	if err != nil {
		return err
	}
	if adjusted > 0 {
		slog.Warn("ledger reconciled", slog.Int("adjusted_units", adjusted))
	}
	return nil
}
