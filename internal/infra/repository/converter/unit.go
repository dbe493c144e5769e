package converter

import (
	"booking-core/internal/domain/resource"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/pkg/pgconv"
)

func UnitFromRow(row sqlc.ResourceUnits) (*resource.Unit, error) {
	kind, err := resource.ParseKind(row.Kind)
	if err != nil {
		return nil, errs.Wrapf(err, "unit %s", row.ID)
	}
	return resource.ReconstructUnit(
		row.ID,
		kind,
		row.Name,
		row.Zone,
		pgconv.DatePtrFromPgtype(row.EventDate),
		int(row.Capacity),
		row.PriceCents,
		row.IsActive,
		int(row.CommittedQty),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func UnitToInsertParams(u *resource.Unit) sqlc.InsertUnitParams {
	return sqlc.InsertUnitParams{
		ID:         u.ID(),
		Kind:       string(u.Kind()),
		Name:       u.Name(),
		Zone:       u.Zone(),
		EventDate:  pgconv.DatePtrToPgtype(u.EventDate()),
		Capacity:   int32(u.Capacity()),
		PriceCents: u.PriceCents(),
		IsActive:   u.IsActive(),
	}
}
