package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"booking-core/internal/domain/order"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/pkg/ptr"
	"booking-core/internal/usecase/shared"
)

// enqueueEvent writes one outbox job per channel inside tx, so nothing is
// dispatched unless the transition commits.
func enqueueEvent(ctx context.Context, tx shared.Tx, ev shared.OrderEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode order event")
	}
	for _, kind := range []string{shared.JobKindPush, shared.JobKindEvent} {
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), kind, ev.Event, payload, ev.OccurredAt); err != nil {
			return err
		}
	}
	return nil
}

func orderEvent(name string, o *order.Order, text string, now time.Time) shared.OrderEvent {
	return shared.OrderEvent{
		Event:       name,
		OrderID:     o.ID(),
		RecipientID: o.OwnerID(),
		Status:      o.Status().String(),
		TotalCents:  ptr.Of(o.Total().Cents()),
		Text:        text,
		OccurredAt:  now,
	}
}

func heldEvent(o *order.Order, now time.Time) shared.OrderEvent {
	text := fmt.Sprintf("Order %s is on hold. Pay %s before %s.",
		shortID(o), o.Total(), o.ExpiresAt().Format("2006-01-02 15:04 MST"))
	return orderEvent(shared.EventOrderHeld, o, text, now)
}

func paidEvent(o *order.Order, now time.Time) shared.OrderEvent {
	return orderEvent(shared.EventOrderPaid, o, fmt.Sprintf("Order %s is confirmed.", shortID(o)), now)
}

func cancelledEvent(o *order.Order, now time.Time) shared.OrderEvent {
	return orderEvent(shared.EventOrderCancelled, o, fmt.Sprintf("Order %s was cancelled.", shortID(o)), now)
}

func transferredEvent(o *order.Order, now time.Time) shared.OrderEvent {
	return orderEvent(shared.EventOrderTransferred, o, fmt.Sprintf("Order %s was transferred to you.", shortID(o)), now)
}

func expiredEvent(e shared.ExpiredOrder, now time.Time) shared.OrderEvent {
	return shared.OrderEvent{
		Event:       shared.EventOrderExpired,
		OrderID:     e.ID,
		RecipientID: e.OwnerID,
		Status:      order.StatusExpired.String(),
		Text:        fmt.Sprintf("Order %s expired before payment.", e.ID.String()[:8]),
		OccurredAt:  now,
	}
}

func enqueueExpired(ctx context.Context, tx shared.Tx, expired []shared.ExpiredOrder, now time.Time) error {
	for _, e := range expired {
		if err := enqueueEvent(ctx, tx, expiredEvent(e, now)); err != nil {
			return err
		}
	}
	return nil
}

func shortID(o *order.Order) string {
	return o.ID().String()[:8]
}
