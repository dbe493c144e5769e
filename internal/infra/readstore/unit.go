package readstore

import (
	"context"

	"booking-core/internal/infra"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitViewQueries interface {
	GetUnitView(ctx context.Context, db sqlc.DBTX, arg sqlc.GetUnitViewParams) (sqlc.GetUnitViewRow, error)
	ListUnitViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUnitViewsParams) ([]sqlc.ListUnitViewsRow, error)
}

type UnitReadStore struct {
	queries UnitViewQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewUnitReadStore(queries UnitViewQueries, db sqlc.DBTX, clk clock.Clock) *UnitReadStore {
	return &UnitReadStore{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *UnitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UnitView, error) {
	row, err := r.queries.GetUnitView(ctx, r.db, sqlc.GetUnitViewParams{
		Now: pgconv.TimeToPgtype(r.clock.Now()),
		ID:  id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get unit view", err)
	}

	return &queries.UnitView{
		ID:         row.ID,
		Kind:       row.Kind,
		Name:       row.Name,
		Zone:       row.Zone,
		EventDate:  pgconv.DatePtrFromPgtype(row.EventDate),
		Capacity:   int(row.Capacity),
		PriceCents: row.PriceCents,
		IsActive:   row.IsActive,
		Committed:  int(row.CommittedQty),
		Reserved:   int(row.Reserved),
		Available:  int(row.Available),
	}, nil
}

func (r *UnitReadStore) List(ctx context.Context, filter queries.UnitFilter) ([]*queries.UnitView, error) {
	params := sqlc.ListUnitViewsParams{
		Now:        pgconv.TimeToPgtype(r.clock.Now()),
		Kind:       pgconv.StringPtrToPgtype(filter.Kind),
		Zone:       pgconv.StringPtrToPgtype(filter.Zone),
		EventDate:  pgconv.DatePtrToPgtype(filter.EventDate),
		ActiveOnly: filter.ActiveOnly,
	}

	rows, err := r.queries.ListUnitViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unit views", err)
	}

	result := make([]*queries.UnitView, len(rows))
	for i, row := range rows {
		result[i] = &queries.UnitView{
			ID:         row.ID,
			Kind:       row.Kind,
			Name:       row.Name,
			Zone:       row.Zone,
			EventDate:  pgconv.DatePtrFromPgtype(row.EventDate),
			Capacity:   int(row.Capacity),
			PriceCents: row.PriceCents,
			IsActive:   row.IsActive,
			Committed:  int(row.CommittedQty),
			Reserved:   int(row.Reserved),
			Available:  int(row.Available),
		}
	}
	return result, nil
}

