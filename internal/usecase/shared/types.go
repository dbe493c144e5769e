package shared

import (
	"time"

	"github.com/google/uuid"
)

type ProofPurpose string

const (
	ProofPurposeOrderPayment ProofPurpose = "order_payment"
	ProofPurposeTransferFee  ProofPurpose = "transfer_fee"
)

type ExpiredOrder struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

// Notification job statuses
const (
	JobStatusQueued  = "queued"
	JobStatusRunning = "running"
	JobStatusSent    = "sent"
	JobStatusFailed  = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

// Notification job kinds. Every order event is enqueued once per kind.
const (
	JobKindPush  = "push"
	JobKindEvent = "event"
)

// Order event names, also used as the notification topic.
const (
	EventOrderHeld        = "order.held"
	EventOrderPaid        = "order.paid"
	EventOrderExpired     = "order.expired"
	EventOrderCancelled   = "order.cancelled"
	EventOrderTransferred = "order.transferred"
)

// OrderEvent is the outbox payload. RecipientID receives the push text;
// the whole envelope is published to the event stream.
type OrderEvent struct {
	Event       string    `json:"event"`
	OrderID     uuid.UUID `json:"order_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Status      string    `json:"status"`
	TotalCents  *int64    `json:"total_cents,omitempty"`
	Text        string    `json:"text"`
	OccurredAt  time.Time `json:"occurred_at"`
}
