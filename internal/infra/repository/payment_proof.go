package repository

import (
	"context"

	"booking-core/internal/domain/order"
	"booking-core/internal/infra"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentProofWriteQueries interface {
	ClaimPaymentProof(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPaymentProofParams) (string, error)
}

type PaymentProofRepository struct {
	queries PaymentProofWriteQueries
	db      sqlc.DBTX
}

func NewPaymentProofRepository(queries PaymentProofWriteQueries, db sqlc.DBTX) *PaymentProofRepository {
	return &PaymentProofRepository{
		queries: queries,
		db:      db,
	}
}

// Claim inserts the proof reference. The insert is ON CONFLICT DO NOTHING, so
// an empty result means another order already holds the proof.
func (r *PaymentProofRepository) Claim(ctx context.Context, tx sqlc.DBTX, proof order.ProofRef, orderID uuid.UUID, purpose shared.ProofPurpose, amount order.Money) error {
	_, err := r.queries.ClaimPaymentProof(ctx, tx, sqlc.ClaimPaymentProofParams{
		ProofRef:    proof.String(),
		OrderID:     orderID,
		Purpose:     string(purpose),
		AmountCents: amount.Cents(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("payment proof already used", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to claim payment proof", err)
	}
	return nil
}
