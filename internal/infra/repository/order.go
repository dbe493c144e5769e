package repository

import (
	"context"
	"time"

	"booking-core/internal/domain/order"
	"booking-core/internal/infra"
	"booking-core/internal/infra/repository/converter"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderWriteQueries interface {
	InsertOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderParams) error
	InsertOrderLine(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderLineParams) error
	GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderLines(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderLines, error)
	UpdateOrderState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStateParams) (int64, error)
	InsertOrderTransfer(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderTransferParams) error
	ExpireStaleOrders(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]sqlc.ExpireStaleOrdersRow, error)
	ExpireStaleOrderByID(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireStaleOrderByIDParams) ([]sqlc.ExpireStaleOrderByIDRow, error)
	ExpireStaleOrdersByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireStaleOrdersByOwnerParams) ([]sqlc.ExpireStaleOrdersByOwnerRow, error)
	ExpireStaleOrdersByUnits(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireStaleOrdersByUnitsParams) ([]sqlc.ExpireStaleOrdersByUnitsRow, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.InsertOrder(ctx, tx, converter.OrderToInsertParams(o)); err != nil {
		return infra.WrapRepoErr("failed to insert order", err)
	}

	for _, line := range o.Lines() {
		if err := r.queries.InsertOrderLine(ctx, tx, converter.OrderLineToInsertParams(o, line)); err != nil {
			return infra.WrapRepoErr("failed to insert order line", err)
		}
	}

	return nil
}

// FindForUpdate locks the order row for the rest of the transaction.
func (r *OrderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	lines, err := r.queries.ListOrderLines(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}

	o, err := converter.OrderFromRows(row, lines)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct order", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OrderRepository) Save(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	affected, err := r.queries.UpdateOrderState(ctx, tx, converter.OrderToUpdateParams(o))
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

// ExpireStale flips every pending order in scope whose hold has lapsed to
// expired. Rows locked by another transaction are skipped.
func (r *OrderRepository) ExpireStale(ctx context.Context, tx sqlc.DBTX, scope order.ExpiryScope, now time.Time) ([]shared.ExpiredOrder, error) {
	ts := pgconv.TimeToPgtype(now)

	var expired []shared.ExpiredOrder
	switch {
	case scope.OrderID != nil:
		rows, err := r.queries.ExpireStaleOrderByID(ctx, tx, sqlc.ExpireStaleOrderByIDParams{Now: ts, ID: *scope.OrderID})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to expire order", err)
		}
		for _, row := range rows {
			expired = append(expired, shared.ExpiredOrder{ID: row.ID, OwnerID: row.OwnerID})
		}
	case scope.OwnerID != nil:
		rows, err := r.queries.ExpireStaleOrdersByOwner(ctx, tx, sqlc.ExpireStaleOrdersByOwnerParams{Now: ts, OwnerID: *scope.OwnerID})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to expire owner orders", err)
		}
		for _, row := range rows {
			expired = append(expired, shared.ExpiredOrder{ID: row.ID, OwnerID: row.OwnerID})
		}
	case len(scope.UnitIDs) > 0:
		rows, err := r.queries.ExpireStaleOrdersByUnits(ctx, tx, sqlc.ExpireStaleOrdersByUnitsParams{Now: ts, UnitIds: scope.UnitIDs})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to expire unit orders", err)
		}
		for _, row := range rows {
			expired = append(expired, shared.ExpiredOrder{ID: row.ID, OwnerID: row.OwnerID})
		}
	default:
		rows, err := r.queries.ExpireStaleOrders(ctx, tx, ts)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to expire stale orders", err)
		}
		for _, row := range rows {
			expired = append(expired, shared.ExpiredOrder{ID: row.ID, OwnerID: row.OwnerID})
		}
	}

	return expired, nil
}

func (r *OrderRepository) RecordTransfer(ctx context.Context, tx sqlc.DBTX, t *order.Transfer) error {
	if err := r.queries.InsertOrderTransfer(ctx, tx, converter.TransferToInsertParams(t)); err != nil {
		return infra.WrapRepoErr("failed to record transfer", err)
	}
	return nil
}
