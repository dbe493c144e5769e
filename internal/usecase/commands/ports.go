package commands

import (
	"context"
	"time"

	"booking-core/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentVerifier checks a payment proof against an external service. Any
// non-nil error means the proof is not accepted.
type PaymentVerifier interface {
	Verify(ctx context.Context, proof order.ProofRef, amount order.Money) error
}

type OrderSettings struct {
	HoldWindow         time.Duration
	AmountEpsilon      decimal.Decimal
	TransferFee        order.Money
	MaxQuantityPerLine int
}

func DefaultOrderSettings() OrderSettings {
	return OrderSettings{
		HoldWindow:         order.DefaultHoldWindow,
		AmountEpsilon:      order.DefaultAmountEpsilon,
		MaxQuantityPerLine: 20,
	}
}

type HoldLine struct {
	UnitID   uuid.UUID
	Quantity int
}

type CreateHoldRequest struct {
	Lines []HoldLine
}

type ConfirmPaymentRequest struct {
	OrderID       uuid.UUID
	ProofRef      string
	ClaimedAmount decimal.Decimal
	SlipURL       *string
}

type TransferRequest struct {
	OrderID     uuid.UUID
	NewOwnerID  uuid.UUID
	FeeProofRef *string
	SlipURL     *string
}

type HoldResult struct {
	OrderID        uuid.UUID
	Status         order.Status
	TotalCents     int64
	ExpiresAt      *time.Time
	PaymentPayload *string
}

type OrderStateResult struct {
	OrderID   uuid.UUID
	OwnerID   uuid.UUID
	Status    order.Status
	UpdatedAt time.Time
}

func stateOf(o *order.Order) *OrderStateResult {
	return &OrderStateResult{
		OrderID:   o.ID(),
		OwnerID:   o.OwnerID(),
		Status:    o.Status(),
		UpdatedAt: o.UpdatedAt(),
	}
}
