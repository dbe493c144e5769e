package queries

import (
	"time"

	"booking-core/internal/domain/order"

	"github.com/google/uuid"
)

type OrderLineView struct {
	UnitID         uuid.UUID  `json:"unit_id"`
	UnitKind       string     `json:"unit_kind"`
	UnitName       string     `json:"unit_name"`
	UnitZone       string     `json:"unit_zone"`
	UnitEventDate  *time.Time `json:"unit_event_date,omitempty"`
	Quantity       int        `json:"quantity"`
	UnitPriceCents int64      `json:"unit_price_cents"`
}

// OrderView is the read model behind getOrderStatus and listOrders.
// RequiresPayment and PaymentPayload are derived when the view is served.
type OrderView struct {
	ID              uuid.UUID       `json:"id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	Status          order.Status    `json:"status"`
	TotalCents      int64           `json:"total_cents"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
	PaymentProofRef *string         `json:"payment_proof_ref,omitempty"`
	SlipURL         *string         `json:"slip_url,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Lines           []OrderLineView `json:"lines"`
	RequiresPayment bool            `json:"requires_payment"`
	PaymentPayload  *string         `json:"payment_payload,omitempty"`
}

// UnitView is a catalog entry with its live availability.
type UnitView struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	Name       string     `json:"name"`
	Zone       string     `json:"zone"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	Capacity   int        `json:"capacity"`
	PriceCents int64      `json:"price_cents"`
	IsActive   bool       `json:"is_active"`
	Committed  int        `json:"committed"`
	Reserved   int        `json:"reserved"`
	Available  int        `json:"available"`
}

type UnitFilter struct {
	Kind       *string
	Zone       *string
	EventDate  *time.Time
	ActiveOnly bool
}
