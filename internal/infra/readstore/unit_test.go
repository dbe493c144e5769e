//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"booking-core/internal/infra"
	"booking-core/internal/infra/readstore"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/pkg/ptr"
	"booking-core/internal/usecase/queries"
	readstoremock "booking-core/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUnitReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	unitID := uuid.New()
	clk := clock.NewMockClock(baseTime)

	t.Run("success: availability from row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUnitViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewUnitReadStore(mockQueries, mockDB, clk)

		mockQueries.EXPECT().GetUnitView(ctx, mockDB, sqlc.GetUnitViewParams{
			Now: pgconv.TimeToPgtype(baseTime),
			ID:  unitID,
		}).Return(sqlc.GetUnitViewRow{
			ID:           unitID,
			Kind:         "table",
			Name:         "T12",
			Zone:         "terrace",
			Capacity:     1,
			PriceCents:   50000,
			IsActive:     true,
			CommittedQty: 0,
			Reserved:     1,
			Available:    0,
		}, nil)

		v, err := store.FindByID(ctx, unitID)

		require.NoError(t, err)
		assert.Equal(t, &queries.UnitView{
			ID:         unitID,
			Kind:       "table",
			Name:       "T12",
			Zone:       "terrace",
			Capacity:   1,
			PriceCents: 50000,
			IsActive:   true,
			Reserved:   1,
		}, v)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUnitViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewUnitReadStore(mockQueries, mockDB, clk)

		mockQueries.EXPECT().GetUnitView(ctx, mockDB, gomock.Any()).Return(sqlc.GetUnitViewRow{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, unitID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUnitReadStore_List(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(baseTime)
	eventDate := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		filter queries.UnitFilter
		want   sqlc.ListUnitViewsParams
	}{
		{
			name:   "no filter",
			filter: queries.UnitFilter{},
			want:   sqlc.ListUnitViewsParams{Now: pgconv.TimeToPgtype(baseTime)},
		},
		{
			name: "all filters",
			filter: queries.UnitFilter{
				Kind:       ptr.Of("ticket_pool"),
				Zone:       ptr.Of("hall"),
				EventDate:  &eventDate,
				ActiveOnly: true,
			},
			want: sqlc.ListUnitViewsParams{
				Now:        pgconv.TimeToPgtype(baseTime),
				Kind:       pgtype.Text{String: "ticket_pool", Valid: true},
				Zone:       pgtype.Text{String: "hall", Valid: true},
				EventDate:  pgconv.DatePtrToPgtype(&eventDate),
				ActiveOnly: true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockUnitViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewUnitReadStore(mockQueries, mockDB, clk)

			mockQueries.EXPECT().ListUnitViews(ctx, mockDB, tc.want).
				Return([]sqlc.ListUnitViewsRow{{ID: uuid.New(), Kind: "ticket_pool", Capacity: 100, Available: 40}}, nil)

			views, err := store.List(ctx, tc.filter)

			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, 40, views[0].Available)
		})
	}
}
