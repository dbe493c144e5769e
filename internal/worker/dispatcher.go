package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"
)

var ErrUnknownJobKind = errs.New("unknown notification job kind")

type PushSender interface {
	Send(ctx context.Context, recipientID, text string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, key, value []byte, headers map[string]string) error
}

type DispatcherConfig struct {
	Interval    time.Duration
	BatchSize   int32
	MaxAttempts int32
	// Running jobs not updated for this long are handed out again.
	StaleAfter  time.Duration
	BaseBackoff time.Duration
}

// NotificationDispatcher drains the notification outbox. Delivery failures
// are retried with exponential backoff and never touch order state.
type NotificationDispatcher struct {
	uow    shared.UnitOfWork
	push   PushSender
	events EventPublisher
	cfg    DispatcherConfig
	clock  clock.Clock
}

// NewNotificationDispatcher accepts nil push or events; jobs for a missing
// channel are marked sent without delivery.
func NewNotificationDispatcher(uow shared.UnitOfWork, push PushSender, events EventPublisher, cfg DispatcherConfig, clock clock.Clock) *NotificationDispatcher {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = 5 * time.Minute
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 10 * time.Second
	}
	return &NotificationDispatcher{
		uow:    uow,
		push:   push,
		events: events,
		cfg:    cfg,
		clock:  clock,
	}
}

func (d *NotificationDispatcher) Start(ctx context.Context) {
	slog.Info("starting notification dispatcher", slog.Duration("interval", d.cfg.Interval))
	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("notification dispatcher stopped")
			return
		case <-ticker.C:
			if _, err := d.RunOnce(ctx); err != nil {
				slog.Error("notification batch failed", slog.String("error", err.Error()))
			}
		}
	}
}

// RunOnce claims one batch of due jobs and delivers them. It returns the
// number of jobs delivered successfully.
func (d *NotificationDispatcher) RunOnce(ctx context.Context) (int, error) {
	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := d.clock.Now()
		requeued, err := tx.Notifications().RequeueStale(ctx, tx.DB(), now.Add(-d.cfg.StaleAfter))
		if err != nil {
			return err
		}
		if requeued > 0 {
			slog.Warn("requeued stale notification jobs", slog.Int64("count", requeued))
		}

		jobs, err = tx.Notifications().ClaimDue(ctx, tx.DB(), now, d.cfg.BatchSize)
		return err
	})
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		deliverErr := d.deliver(ctx, job)
		if err := d.record(ctx, job, deliverErr); err != nil {
			slog.Error("failed to record notification result",
				slog.String("job_id", job.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if deliverErr == nil {
			sent++
		}
	}
	return sent, nil
}

func (d *NotificationDispatcher) deliver(ctx context.Context, job shared.NotificationJob) error {
	switch job.Kind {
	case shared.JobKindPush:
		if d.push == nil {
			return nil
		}
		var ev shared.OrderEvent
		if err := json.Unmarshal(job.Payload, &ev); err != nil {
			return errs.Wrap(err, "failed to decode order event")
		}
		return d.push.Send(ctx, ev.RecipientID.String(), ev.Text)
	case shared.JobKindEvent:
		if d.events == nil {
			return nil
		}
		var ev shared.OrderEvent
		if err := json.Unmarshal(job.Payload, &ev); err != nil {
			return errs.Wrap(err, "failed to decode order event")
		}
		return d.events.Publish(ctx, []byte(ev.OrderID.String()), job.Payload, map[string]string{
			"event":  job.Topic,
			"job_id": job.ID.String(),
		})
	default:
		return errs.Wrap(ErrUnknownJobKind, job.Kind)
	}
}

func (d *NotificationDispatcher) record(ctx context.Context, job shared.NotificationJob, deliverErr error) error {
	now := d.clock.Now()
	status := shared.JobStatusSent
	runAt := now
	var lastError *string

	if deliverErr != nil {
		msg := deliverErr.Error()
		lastError = &msg
		if job.Attempts >= d.cfg.MaxAttempts {
			status = shared.JobStatusFailed
			slog.Error("notification job failed permanently",
				slog.String("job_id", job.ID.String()),
				slog.String("kind", job.Kind),
				slog.String("topic", job.Topic),
				slog.Int("attempt", int(job.Attempts)),
				slog.String("error", msg))
		} else {
			status = shared.JobStatusQueued
			runAt = now.Add(d.backoff(job.Attempts))
			slog.Warn("notification delivery failed, will retry",
				slog.String("job_id", job.ID.String()),
				slog.String("kind", job.Kind),
				slog.Int("attempt", int(job.Attempts)),
				slog.Time("retry_at", runAt),
				slog.String("error", msg))
		}
	}

	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastError, runAt)
	})
}

// backoff doubles per attempt: base, 2*base, 4*base, capped at one hour.
func (d *NotificationDispatcher) backoff(attempt int32) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := time.Duration(float64(d.cfg.BaseBackoff) * math.Pow(2, float64(attempt-1)))
	if delay > time.Hour || delay <= 0 {
		return time.Hour
	}
	return delay
}
