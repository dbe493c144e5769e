package readstore

import (
	"context"

	"booking-core/internal/domain/order"
	"booking-core/internal/infra"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrdersByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByOwnerParams) ([]sqlc.Orders, error)
	ListOrderLineViews(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.ListOrderLineViewsRow, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}

	view, err := toOrderView(row)
	if err != nil {
		return nil, err
	}

	if err := r.attachLines(ctx, []*queries.OrderView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *OrderReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersByOwner(ctx, r.db, sqlc.ListOrdersByOwnerParams{
		OwnerID: ownerID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by owner", err)
	}

	views := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		v, err := toOrderView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	if err := r.attachLines(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// attachLines loads the lines of every view with a single query.
func (r *OrderReadStore) attachLines(ctx context.Context, views []*queries.OrderView) error {
	if len(views) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*queries.OrderView, len(views))
	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		byID[v.ID] = v
		ids = append(ids, v.ID)
		v.Lines = []queries.OrderLineView{}
	}

	rows, err := r.queries.ListOrderLineViews(ctx, r.db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list order lines", err)
	}

	for _, row := range rows {
		v, ok := byID[row.OrderID]
		if !ok {
			continue
		}
		v.Lines = append(v.Lines, queries.OrderLineView{
			UnitID:         row.UnitID,
			UnitKind:       row.UnitKind,
			UnitName:       row.UnitName,
			UnitZone:       row.UnitZone,
			UnitEventDate:  pgconv.DatePtrFromPgtype(row.UnitEventDate),
			Quantity:       int(row.Quantity),
			UnitPriceCents: row.UnitPriceCents,
		})
	}
	return nil
}

func toOrderView(row sqlc.Orders) (*queries.OrderView, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected order status "+row.Status, err, infra.KindDBFailure)
	}

	return &queries.OrderView{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Status:          status,
		TotalCents:      row.TotalCents,
		ExpiresAt:       pgconv.TimePtrFromPgtype(row.ExpiresAt),
		PaymentProofRef: pgconv.StringPtrFromPgtype(row.PaymentProofRef),
		SlipURL:         pgconv.StringPtrFromPgtype(row.SlipUrl),
		PaidAt:          pgconv.TimePtrFromPgtype(row.PaidAt),
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
