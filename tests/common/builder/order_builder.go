//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/order"
	reqdto "booking-core/internal/handler/dto/request"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	UnitID     uuid.UUID
	Quantity   int
	PriceCents int64
	Status     order.Status
	CreatedAt  time.Time
	HoldWindow time.Duration
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		UnitID:     uuid.New(),
		Quantity:   2,
		PriceCents: 25000,
		Status:     order.StatusPending,
		CreatedAt:  time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC),
		HoldWindow: order.DefaultHoldWindow,
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) WithOwner(id uuid.UUID) *OrderBuilder {
	o.OwnerID = id
	return o
}

func (o *OrderBuilder) WithUnit(id uuid.UUID) *OrderBuilder {
	o.UnitID = id
	return o
}

func (o *OrderBuilder) WithQuantity(qty int) *OrderBuilder {
	o.Quantity = qty
	return o
}

func (o *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	o.Status = s
	return o
}

func (o *OrderBuilder) WithCreatedAt(t time.Time) *OrderBuilder {
	o.CreatedAt = t
	return o
}

func (o *OrderBuilder) TotalCents() int64 {
	return o.PriceCents * int64(o.Quantity)
}

// Build methods
func (o *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Lines: []reqdto.HoldLineRequest{{UnitID: o.UnitID, Quantity: o.Quantity}},
	}
}

func (o *OrderBuilder) BuildPaymentRequestDTO(proofRef string) reqdto.ConfirmPaymentRequest {
	amount := decimal.New(o.TotalCents(), -2)
	return reqdto.ConfirmPaymentRequest{ProofRef: proofRef, Amount: &amount}
}

func (o *OrderBuilder) BuildHoldResult() *commands.HoldResult {
	var expiresAt *time.Time
	if o.Status == order.StatusPending {
		t := o.CreatedAt.Add(o.HoldWindow)
		expiresAt = &t
	}
	return &commands.HoldResult{
		OrderID:    o.ID,
		Status:     o.Status,
		TotalCents: o.TotalCents(),
		ExpiresAt:  expiresAt,
	}
}

func (o *OrderBuilder) BuildStateResult() *commands.OrderStateResult {
	return &commands.OrderStateResult{
		OrderID:   o.ID,
		OwnerID:   o.OwnerID,
		Status:    o.Status,
		UpdatedAt: o.CreatedAt,
	}
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	v := &queries.OrderView{
		ID:         o.ID,
		OwnerID:    o.OwnerID,
		Status:     o.Status,
		TotalCents: o.TotalCents(),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.CreatedAt,
		Lines: []queries.OrderLineView{{
			UnitID:         o.UnitID,
			UnitKind:       "ticket_pool",
			UnitName:       "General Admission",
			UnitZone:       "A",
			Quantity:       o.Quantity,
			UnitPriceCents: o.PriceCents,
		}},
	}
	if o.Status == order.StatusPending {
		t := o.CreatedAt.Add(o.HoldWindow)
		v.ExpiresAt = &t
		v.RequiresPayment = v.TotalCents > 0
	}
	return v
}
