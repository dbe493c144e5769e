package converter

import (
	"fmt"
	"math"

	"booking-core/internal/domain/order"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/pkg/pgconv"
)

func OrderToInsertParams(o *order.Order) sqlc.InsertOrderParams {
	return sqlc.InsertOrderParams{
		ID:         o.ID(),
		OwnerID:    o.OwnerID(),
		Status:     o.Status().String(),
		TotalCents: o.Total().Cents(),
		ExpiresAt:  pgconv.TimePtrToPgtype(o.ExpiresAt()),
		PaidAt:     pgconv.TimePtrToPgtype(o.PaidAt()),
		CreatedAt:  pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderLineToInsertParams(o *order.Order, l order.Line) sqlc.InsertOrderLineParams {
	qty := l.Quantity()
	if qty > math.MaxInt32 {
		panic(fmt.Sprintf("quantity out of int32 range: %d", qty))
	}
	return sqlc.InsertOrderLineParams{
		OrderID:        o.ID(),
		UnitID:         l.UnitID(),
		Quantity:       int32(qty),
		UnitPriceCents: l.UnitPrice().Cents(),
	}
}

func OrderToUpdateParams(o *order.Order) sqlc.UpdateOrderStateParams {
	params := sqlc.UpdateOrderStateParams{
		ID:          o.ID(),
		Status:      o.Status().String(),
		OwnerID:     o.OwnerID(),
		SlipUrl:     pgconv.StringPtrToPgtype(o.SlipURL()),
		PaidAt:      pgconv.TimePtrToPgtype(o.PaidAt()),
		CancelledAt: pgconv.TimePtrToPgtype(o.CancelledAt()),
		UpdatedAt:   pgconv.TimeToPgtype(o.UpdatedAt()),
	}
	if ref := o.ProofRef(); ref != nil {
		params.PaymentProofRef = pgconv.StringToPgtype(ref.String())
	}
	return params
}

func TransferToInsertParams(t *order.Transfer) sqlc.InsertOrderTransferParams {
	params := sqlc.InsertOrderTransferParams{
		ID:          t.ID(),
		OrderID:     t.OrderID(),
		FromOwnerID: t.FromOwner(),
		ToOwnerID:   t.ToOwner(),
		SlipUrl:     pgconv.StringPtrToPgtype(t.SlipURL()),
		CreatedAt:   pgconv.TimeToPgtype(t.CreatedAt()),
	}
	if fee := t.FeeProof(); fee != nil {
		params.FeeProofRef = pgconv.StringToPgtype(fee.String())
	}
	return params
}

// OrderFromRows rebuilds the aggregate from its persisted row and lines.
func OrderFromRows(row sqlc.Orders, lineRows []sqlc.OrderLines) (*order.Order, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}
	total, err := order.NewMoney(row.TotalCents)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}

	lines := make([]order.Line, 0, len(lineRows))
	for _, lr := range lineRows {
		price, err := order.NewMoney(lr.UnitPriceCents)
		if err != nil {
			return nil, errs.Wrapf(err, "order %s line %s", row.ID, lr.UnitID)
		}
		line, err := order.NewLine(lr.UnitID, int(lr.Quantity), price)
		if err != nil {
			return nil, errs.Wrapf(err, "order %s line %s", row.ID, lr.UnitID)
		}
		lines = append(lines, line)
	}

	var proof *order.ProofRef
	if row.PaymentProofRef.Valid {
		p, err := order.NewProofRef(row.PaymentProofRef.String)
		if err != nil {
			return nil, errs.Wrapf(err, "order %s", row.ID)
		}
		proof = &p
	}

	return order.ReconstructOrder(
		row.ID,
		row.OwnerID,
		lines,
		total,
		status,
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		proof,
		pgconv.StringPtrFromPgtype(row.SlipUrl),
		pgconv.TimePtrFromPgtype(row.PaidAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
