//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"booking-core/internal/domain/order"
	"booking-core/internal/infra"
	"booking-core/internal/infra/repository"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/usecase/shared"
	repositorymock "booking-core/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errCheckViolation = &pgconn.PgError{Code: "23514"}

func TestPaymentProofRepository_Claim(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	proof, err := order.NewProofRef("TXN-20250314-0001")
	require.NoError(t, err)

	expectedParams := sqlc.ClaimPaymentProofParams{
		ProofRef:    "TXN-20250314-0001",
		OrderID:     orderID,
		Purpose:     "order_payment",
		AmountCents: 150000,
	}

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: proof claimed"},
		{name: "error: conflict returns no row", queryErr: pgx.ErrNoRows, expectKind: infra.KindDuplicateKey},
		{name: "error: unique violation", queryErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database failure", queryErr: errors.New("broken pipe"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentProofWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentProofRepository(mockQueries, mockDB)

			ret := ""
			if tc.queryErr == nil {
				ret = proof.String()
			}
			mockQueries.EXPECT().ClaimPaymentProof(ctx, mockDB, expectedParams).Return(ret, tc.queryErr)

			err := repo.Claim(ctx, mockDB, proof, orderID, shared.ProofPurposeOrderPayment, order.MustMoney(150000))

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
