package queries

import (
	"context"
	"log/slog"
	"slices"

	"booking-core/internal/domain/order"
	"booking-core/internal/infra"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*OrderView, error)
}

// StaleOrderSweeper expires lapsed holds in scope. Reads call it first so
// they never report a pending order whose deadline has passed.
type StaleOrderSweeper interface {
	ExpireStale(ctx context.Context, scope order.ExpiryScope) (int, error)
}

type PaymentPayloadEncoder interface {
	Encode(amountCents int64) (string, error)
}

type OrderQueries interface {
	GetStatus(ctx context.Context, actor order.Actor, id uuid.UUID) (*OrderView, error)
	ListForOwner(ctx context.Context, actor order.Actor, ownerID uuid.UUID, limit int) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store   OrderReadStore
	sweeper StaleOrderSweeper
	encoder PaymentPayloadEncoder
}

func NewOrderQueries(store OrderReadStore, sweeper StaleOrderSweeper, encoder PaymentPayloadEncoder) OrderQueries {
	return &orderQueriesImpl{
		store:   store,
		sweeper: sweeper,
		encoder: encoder,
	}
}

func (q *orderQueriesImpl) GetStatus(ctx context.Context, actor order.Actor, id uuid.UUID) (*OrderView, error) {
	if _, err := q.sweeper.ExpireStale(ctx, order.OrderScope(id)); err != nil {
		return nil, err
	}

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	if view.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	q.decorate(view)
	return view, nil
}

// ListForOwner returns ownerID's orders, pending first, then paid, expired
// and cancelled, newest first within a status.
func (q *orderQueriesImpl) ListForOwner(ctx context.Context, actor order.Actor, ownerID uuid.UUID, limit int) ([]*OrderView, error) {
	if ownerID != actor.UserID && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	if _, err := q.sweeper.ExpireStale(ctx, order.OwnerScope(ownerID)); err != nil {
		return nil, err
	}

	views, err := q.store.ListByOwner(ctx, ownerID, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, err
	}

	SortOrderViews(views)
	for _, v := range views {
		q.decorate(v)
	}
	return views, nil
}

func (q *orderQueriesImpl) decorate(v *OrderView) {
	v.RequiresPayment = v.Status == order.StatusPending && v.TotalCents > 0
	if !v.RequiresPayment || q.encoder == nil {
		return
	}

	payload, err := q.encoder.Encode(v.TotalCents)
	if err != nil {
		slog.Warn("failed to encode payment payload",
			slog.String("order_id", v.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	v.PaymentPayload = &payload
}

func SortOrderViews(views []*OrderView) {
	slices.SortStableFunc(views, func(a, b *OrderView) int {
		if pa, pb := a.Status.Priority(), b.Status.Priority(); pa != pb {
			return pa - pb
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
