//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"booking-core/internal/domain/resource"
	"booking-core/internal/infra"
	"booking-core/internal/infra/repository"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
	repositorymock "booking-core/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func unitRow(id uuid.UUID, capacity, committed int32) sqlc.ResourceUnits {
	return sqlc.ResourceUnits{
		ID:           id,
		Kind:         "ticket_pool",
		Name:         "General Admission",
		Zone:         "floor",
		Capacity:     capacity,
		PriceCents:   150000,
		IsActive:     true,
		CommittedQty: committed,
		CreatedAt:    pgconv.TimeToPgtype(fixedNow),
		UpdatedAt:    pgconv.TimeToPgtype(fixedNow),
	}
}

func TestUnitRepository_Create(t *testing.T) {
	ctx := context.Background()
	u, err := resource.NewUnit(resource.KindTable, "T12", "terrace", nil, 1, 250000)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: unit inserted"},
		{name: "error: duplicate id", queryErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database failure", queryErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUnitWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUnitRepository(mockQueries, mockDB)

			mockQueries.EXPECT().InsertUnit(ctx, mockDB, sqlc.InsertUnitParams{
				ID:         u.ID(),
				Kind:       "table",
				Name:       "T12",
				Zone:       "terrace",
				Capacity:   1,
				PriceCents: 250000,
				IsActive:   true,
			}).Return(tc.queryErr)

			err := repo.Create(ctx, mockDB, u)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestUnitRepository_LockForUpdate(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	ids := []uuid.UUID{a, b}

	t.Run("success: returns locked units", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUnitWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUnitRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockUnitsForUpdate(ctx, mockDB, ids).
			Return([]sqlc.ResourceUnits{unitRow(a, 10, 3), unitRow(b, 5, 0)}, nil)

		units, err := repo.LockForUpdate(ctx, mockDB, ids)

		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, a, units[0].ID())
		assert.Equal(t, resource.KindTicketPool, units[0].Kind())
		assert.Equal(t, 3, units[0].Committed())
		assert.Equal(t, 10, units[0].Capacity())
	})

	t.Run("error: missing unit is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUnitWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUnitRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockUnitsForUpdate(ctx, mockDB, ids).
			Return([]sqlc.ResourceUnits{unitRow(a, 10, 0)}, nil)

		_, err := repo.LockForUpdate(ctx, mockDB, ids)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Contains(t, err.Error(), b.String())
	})

	t.Run("error: query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUnitWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUnitRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockUnitsForUpdate(ctx, mockDB, ids).Return(nil, errors.New("lock timeout"))

		_, err := repo.LockForUpdate(ctx, mockDB, ids)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUnitRepository_ReservedQuantities(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUnitWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewUnitRepository(mockQueries, mockDB)

	mockQueries.EXPECT().SumReservedByUnits(ctx, mockDB, sqlc.SumReservedByUnitsParams{
		UnitIds: []uuid.UUID{a, b},
		Now:     pgconv.TimeToPgtype(fixedNow),
	}).Return([]sqlc.SumReservedByUnitsRow{{UnitID: a, Reserved: 4}}, nil)

	reserved, err := repo.ReservedQuantities(ctx, mockDB, []uuid.UUID{a, b}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, 4, reserved[a])
	assert.Equal(t, 0, reserved[b])
}

func TestUnitRepository_AddCommitted(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "unit missing", affected: 0, expectKind: infra.KindNotFound},
		{name: "capacity check violated", queryErr: errCheckViolation, expectKind: infra.KindConstraintViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUnitWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUnitRepository(mockQueries, mockDB)

			mockQueries.EXPECT().AddCommittedQty(ctx, mockDB, sqlc.AddCommittedQtyParams{Qty: 2, ID: id}).
				Return(tc.affected, tc.queryErr)

			err := repo.AddCommitted(ctx, mockDB, id, 2)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestUnitRepository_PaidQuantity(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUnitWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewUnitRepository(mockQueries, mockDB)

	mockQueries.EXPECT().SumPaidByUnit(ctx, mockDB, id).Return(int32(7), nil)
	mockQueries.EXPECT().SetCommittedQty(ctx, mockDB, sqlc.SetCommittedQtyParams{ID: id, CommittedQty: 7}).Return(nil)

	paid, err := repo.PaidQuantity(ctx, mockDB, id)
	require.NoError(t, err)
	assert.Equal(t, 7, paid)

	require.NoError(t, repo.SetCommitted(ctx, mockDB, id, paid))
}
