package response

import (
	"time"

	"booking-core/internal/domain/order"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderLineResponse struct {
	UnitID         uuid.UUID  `json:"unitId"`
	UnitKind       string     `json:"unitKind"`
	UnitName       string     `json:"unitName"`
	UnitZone       string     `json:"unitZone"`
	UnitEventDate  *time.Time `json:"unitEventDate,omitempty"`
	Quantity       int        `json:"quantity"`
	UnitPriceCents int64      `json:"unitPriceCents"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	OwnerID         uuid.UUID           `json:"ownerId"`
	Status          string              `json:"status"`
	TotalCents      int64               `json:"totalCents"`
	ExpiresAt       *time.Time          `json:"expiresAt,omitempty"`
	PaymentProofRef *string             `json:"paymentProofRef,omitempty"`
	SlipURL         *string             `json:"slipUrl,omitempty"`
	PaidAt          *time.Time          `json:"paidAt,omitempty"`
	CancelledAt     *time.Time          `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Lines           []OrderLineResponse `json:"lines"`
	RequiresPayment bool                `json:"requiresPayment"`
	PaymentPayload  *string             `json:"paymentPayload,omitempty"`
}

type OrderListResponse struct {
	Orders []*OrderResponse `json:"orders"`
}

type HoldResponse struct {
	OrderID         uuid.UUID  `json:"orderId"`
	Status          string     `json:"status"`
	TotalCents      int64      `json:"totalCents"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	RequiresPayment bool       `json:"requiresPayment"`
	PaymentPayload  *string    `json:"paymentPayload,omitempty"`
}

type OrderStateResponse struct {
	OrderID   uuid.UUID `json:"orderId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SweepResponse struct {
	Affected int `json:"affected"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	lines := make([]OrderLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = OrderLineResponse{
			UnitID:         l.UnitID,
			UnitKind:       l.UnitKind,
			UnitName:       l.UnitName,
			UnitZone:       l.UnitZone,
			UnitEventDate:  l.UnitEventDate,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		}
	}
	return &OrderResponse{
		ID:              v.ID,
		OwnerID:         v.OwnerID,
		Status:          v.Status.String(),
		TotalCents:      v.TotalCents,
		ExpiresAt:       v.ExpiresAt,
		PaymentProofRef: v.PaymentProofRef,
		SlipURL:         v.SlipURL,
		PaidAt:          v.PaidAt,
		CancelledAt:     v.CancelledAt,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
		Lines:           lines,
		RequiresPayment: v.RequiresPayment,
		PaymentPayload:  v.PaymentPayload,
	}
}

func FromOrderViews(vs []*queries.OrderView) *OrderListResponse {
	out := make([]*OrderResponse, len(vs))
	for i, v := range vs {
		out[i] = FromOrderView(v)
	}
	return &OrderListResponse{Orders: out}
}

func FromHoldResult(r *commands.HoldResult) *HoldResponse {
	return &HoldResponse{
		OrderID:         r.OrderID,
		Status:          r.Status.String(),
		TotalCents:      r.TotalCents,
		ExpiresAt:       r.ExpiresAt,
		RequiresPayment: r.Status == order.StatusPending && r.TotalCents > 0,
		PaymentPayload:  r.PaymentPayload,
	}
}

func FromOrderState(r *commands.OrderStateResult) *OrderStateResponse {
	return &OrderStateResponse{
		OrderID:   r.OrderID,
		OwnerID:   r.OwnerID,
		Status:    r.Status.String(),
		UpdatedAt: r.UpdatedAt,
	}
}
