package repository

import (
	"context"
	"fmt"
	"time"

	"booking-core/internal/domain/resource"
	"booking-core/internal/infra"
	"booking-core/internal/infra/repository/converter"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UnitWriteQueries interface {
	InsertUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertUnitParams) error
	LockUnitsForUpdate(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.ResourceUnits, error)
	SumReservedByUnits(ctx context.Context, db sqlc.DBTX, arg sqlc.SumReservedByUnitsParams) ([]sqlc.SumReservedByUnitsRow, error)
	AddCommittedQty(ctx context.Context, db sqlc.DBTX, arg sqlc.AddCommittedQtyParams) (int64, error)
	ListUnitIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
	SumPaidByUnit(ctx context.Context, db sqlc.DBTX, unitID uuid.UUID) (int32, error)
	SetCommittedQty(ctx context.Context, db sqlc.DBTX, arg sqlc.SetCommittedQtyParams) error
}

type UnitRepository struct {
	queries UnitWriteQueries
	db      sqlc.DBTX
}

func NewUnitRepository(queries UnitWriteQueries, db sqlc.DBTX) *UnitRepository {
	return &UnitRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UnitRepository) Create(ctx context.Context, tx sqlc.DBTX, u *resource.Unit) error {
	if err := r.queries.InsertUnit(ctx, tx, converter.UnitToInsertParams(u)); err != nil {
		return infra.WrapRepoErr("failed to insert unit", err)
	}
	return nil
}

// LockForUpdate takes row locks on ids in ascending id order. Unknown ids
// are reported as NOT_FOUND.
func (r *UnitRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) ([]*resource.Unit, error) {
	rows, err := r.queries.LockUnitsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock units", err)
	}
	if len(rows) != len(ids) {
		found := make(map[uuid.UUID]struct{}, len(rows))
		for _, row := range rows {
			found[row.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return nil, infra.WrapRepoErr(fmt.Sprintf("unit %s not found", id), nil, infra.KindNotFound)
			}
		}
	}

	units := make([]*resource.Unit, 0, len(rows))
	for _, row := range rows {
		u, err := converter.UnitFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to reconstruct unit", err, infra.KindDBFailure)
		}
		units = append(units, u)
	}
	return units, nil
}

// ReservedQuantities sums pending, unexpired order lines per unit. Units
// without such lines are absent from the map.
func (r *UnitRepository) ReservedQuantities(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, now time.Time) (map[uuid.UUID]int, error) {
	rows, err := r.queries.SumReservedByUnits(ctx, tx, sqlc.SumReservedByUnitsParams{
		UnitIds: ids,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum reserved quantities", err)
	}

	reserved := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		reserved[row.UnitID] = int(row.Reserved)
	}
	return reserved, nil
}

func (r *UnitRepository) AddCommitted(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, qty int) error {
	affected, err := r.queries.AddCommittedQty(ctx, tx, sqlc.AddCommittedQtyParams{Qty: int32(qty), ID: id})
	if err != nil {
		return infra.WrapRepoErr("failed to add committed quantity", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(fmt.Sprintf("unit %s not found", id), nil, infra.KindNotFound)
	}
	return nil
}

func (r *UnitRepository) ListIDs(ctx context.Context, tx sqlc.DBTX) ([]uuid.UUID, error) {
	ids, err := r.queries.ListUnitIDs(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unit ids", err)
	}
	return ids, nil
}

func (r *UnitRepository) PaidQuantity(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int, error) {
	qty, err := r.queries.SumPaidByUnit(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum paid quantity", err)
	}
	return int(qty), nil
}

func (r *UnitRepository) SetCommitted(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, qty int) error {
	err := r.queries.SetCommittedQty(ctx, tx, sqlc.SetCommittedQtyParams{ID: id, CommittedQty: int32(qty)})
	if err != nil {
		return infra.WrapRepoErr("failed to set committed quantity", err)
	}
	return nil
}
