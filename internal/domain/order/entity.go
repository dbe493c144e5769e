package order

import (
	"bytes"
	"errors"
	"slices"
	"time"

	"booking-core/internal/domain/user"
	"booking-core/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyLines       = errors.New("order must contain at least one line")
	ErrDuplicateUnit    = errors.New("order lines must reference distinct units")
	ErrOrderExpired     = errors.New("order hold has expired")
	ErrAlreadyTerminal  = errors.New("order is already in a terminal state")
	ErrForbidden        = errors.New("order belongs to another user")
	ErrNotTransferable  = errors.New("only paid orders can be transferred")
	ErrSameOwner        = errors.New("order is already owned by the target user")
	ErrNotStale         = errors.New("order is not past its hold deadline")
	ErrInvalidHoldDelay = errors.New("hold window must be positive")
)

const DefaultHoldWindow = 15 * time.Minute

type Services struct {
	Clock      clock.Clock
	HoldWindow time.Duration
}

// Actor is the authenticated caller of an order operation.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

type Order struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	lines       []Line
	total       Money
	status      Status
	expiresAt   *time.Time
	proofRef    *ProofRef
	slipURL     *string
	paidAt      *time.Time
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewHold builds a new order for ownerID. A zero total skips the payment
// phase entirely: the order starts paid and never expires.
func NewHold(services *Services, ownerID uuid.UUID, lines []Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyLines
	}
	window := services.HoldWindow
	if window == 0 {
		window = DefaultHoldWindow
	}
	if window < 0 {
		return nil, ErrInvalidHoldDelay
	}

	sorted := slices.Clone(lines)
	slices.SortFunc(sorted, func(a, b Line) int {
		return compareUUID(a.unitID, b.unitID)
	})
	var total Money
	for i, l := range sorted {
		if i > 0 && sorted[i-1].unitID == l.unitID {
			return nil, ErrDuplicateUnit
		}
		total = total.Add(l.Subtotal())
	}

	now := services.Clock.Now()
	o := &Order{
		id:        uuid.New(),
		ownerID:   ownerID,
		lines:     sorted,
		total:     total,
		createdAt: now,
		updatedAt: now,
	}
	if total.IsZero() {
		o.status = StatusPaid
		o.paidAt = &now
	} else {
		deadline := now.Add(window)
		o.status = StatusPending
		o.expiresAt = &deadline
	}
	return o, nil
}

func ReconstructOrder(
	id, ownerID uuid.UUID,
	lines []Line,
	total Money,
	status Status,
	expiresAt *time.Time,
	proofRef *ProofRef,
	slipURL *string,
	paidAt, cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:          id,
		ownerID:     ownerID,
		lines:       lines,
		total:       total,
		status:      status,
		expiresAt:   expiresAt,
		proofRef:    proofRef,
		slipURL:     slipURL,
		paidAt:      paidAt,
		cancelledAt: cancelledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsStale reports whether the order is pending with a deadline at or before now.
func (o *Order) IsStale(now time.Time) bool {
	return o.status == StatusPending && o.expiresAt != nil && !now.Before(*o.expiresAt)
}

func (o *Order) RequiresPayment() bool {
	return o.status == StatusPending && !o.total.IsZero()
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.ownerID == userID
}

// Authorize checks that actor may act on the order. Admins may act on any order.
func (o *Order) Authorize(actor Actor) error {
	if actor.IsAdmin() || o.IsOwnedBy(actor.UserID) {
		return nil
	}
	return ErrForbidden
}

func (o *Order) Expire(now time.Time) error {
	if !o.IsStale(now) {
		return ErrNotStale
	}
	o.transition(StatusExpired, now)
	return nil
}

func (o *Order) ConfirmPayment(proof ProofRef, slipURL *string, now time.Time) error {
	switch o.status {
	case StatusPending:
		if o.IsStale(now) {
			return ErrOrderExpired
		}
	case StatusExpired:
		return ErrOrderExpired
	case StatusPaid, StatusCancelled:
		return ErrAlreadyTerminal
	default:
		return ErrInvalidStatus
	}
	if proof.IsZero() {
		return ErrInvalidProofRef
	}

	o.proofRef = &proof
	o.slipURL = slipURL
	o.paidAt = &now
	o.transition(StatusPaid, now)
	return nil
}

func (o *Order) Cancel(actor Actor, now time.Time) error {
	if err := o.Authorize(actor); err != nil {
		return err
	}
	switch o.status {
	case StatusPending:
	case StatusPaid, StatusExpired, StatusCancelled:
		return ErrAlreadyTerminal
	default:
		return ErrInvalidStatus
	}

	o.cancelledAt = &now
	o.transition(StatusCancelled, now)
	return nil
}

// TransferTo reassigns a paid order from its current owner to newOwner.
func (o *Order) TransferTo(from, newOwner uuid.UUID, feeProof *ProofRef, slipURL *string, now time.Time) (*Transfer, error) {
	if !o.IsOwnedBy(from) {
		return nil, ErrForbidden
	}
	if o.status != StatusPaid {
		return nil, ErrNotTransferable
	}
	if newOwner == from || newOwner == uuid.Nil {
		return nil, ErrSameOwner
	}

	t := &Transfer{
		id:        uuid.New(),
		orderID:   o.id,
		fromOwner: from,
		toOwner:   newOwner,
		feeProof:  feeProof,
		slipURL:   slipURL,
		createdAt: now,
	}
	o.ownerID = newOwner
	o.updatedAt = now
	return t, nil
}

func (o *Order) transition(next Status, now time.Time) {
	if !o.status.CanTransitionTo(next) {
		panic("order: illegal transition " + o.status.String() + " -> " + next.String())
	}
	o.status = next
	o.updatedAt = now
}

// UnitIDs returns the referenced unit ids in ascending order.
func (o *Order) UnitIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(o.lines))
	for _, l := range o.lines {
		ids = append(ids, l.unitID)
	}
	SortUnitIDs(ids)
	return ids
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) OwnerID() uuid.UUID      { return o.ownerID }
func (o *Order) Lines() []Line           { return o.lines }
func (o *Order) Total() Money            { return o.total }
func (o *Order) Status() Status          { return o.status }
func (o *Order) ExpiresAt() *time.Time   { return o.expiresAt }
func (o *Order) ProofRef() *ProofRef     { return o.proofRef }
func (o *Order) SlipURL() *string        { return o.slipURL }
func (o *Order) PaidAt() *time.Time      { return o.paidAt }
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) UpdatedAt() time.Time    { return o.updatedAt }

type Transfer struct {
	id        uuid.UUID
	orderID   uuid.UUID
	fromOwner uuid.UUID
	toOwner   uuid.UUID
	feeProof  *ProofRef
	slipURL   *string
	createdAt time.Time
}

func (t *Transfer) ID() uuid.UUID        { return t.id }
func (t *Transfer) OrderID() uuid.UUID   { return t.orderID }
func (t *Transfer) FromOwner() uuid.UUID { return t.fromOwner }
func (t *Transfer) ToOwner() uuid.UUID   { return t.toOwner }
func (t *Transfer) FeeProof() *ProofRef  { return t.feeProof }
func (t *Transfer) SlipURL() *string     { return t.slipURL }
func (t *Transfer) CreatedAt() time.Time { return t.createdAt }

// SortUnitIDs sorts ids ascending; every path that locks units uses this order.
func SortUnitIDs(ids []uuid.UUID) {
	slices.SortFunc(ids, compareUUID)
}

func compareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
