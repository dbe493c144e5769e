package queries

import (
	"context"

	"booking-core/internal/infra"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type UnitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
	List(ctx context.Context, filter UnitFilter) ([]*UnitView, error)
}

// CatalogQueries is the resource catalog. Availability is computed against
// unexpired holds at read time.
type CatalogQueries interface {
	GetUnit(ctx context.Context, id uuid.UUID) (*UnitView, error)
	ListUnits(ctx context.Context, filter UnitFilter) ([]*UnitView, error)
}

type catalogQueriesImpl struct {
	store UnitReadStore
}

func NewCatalogQueries(store UnitReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetUnit(ctx context.Context, id uuid.UUID) (*UnitView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUnitNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *catalogQueriesImpl) ListUnits(ctx context.Context, filter UnitFilter) ([]*UnitView, error) {
	return q.store.List(ctx, filter)
}
