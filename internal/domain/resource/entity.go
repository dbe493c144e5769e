package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyUnitName    = errors.New("unit name cannot be empty")
	ErrUnitNameTooLong  = errors.New("unit name is too long (max 255 characters)")
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidKind      = errors.New("invalid unit kind")
	ErrUnitInactive     = errors.New("unit is not open for booking")
	ErrCapacityExceeded = errors.New("requested quantity exceeds availability")
)

const (
	MaxUnitNameLength = 255
)

// Kind distinguishes the two bookable shapes. A table is a capacity-1 unit
// for a single event date; a ticket pool holds N interchangeable tickets.
type Kind string

const (
	KindTable      Kind = "table"
	KindTicketPool Kind = "ticket_pool"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindTable, KindTicketPool:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

type Unit struct {
	id         uuid.UUID
	kind       Kind
	name       string
	zone       string
	eventDate  *time.Time
	capacity   int
	priceCents int64
	isActive   bool
	committed  int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUnit(kind Kind, name, zone string, eventDate *time.Time, capacity int, priceCents int64) (*Unit, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if err := validateUnitName(name); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if kind == KindTable && capacity != 1 {
		return nil, ErrInvalidCapacity
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Unit{
		id:         uuid.New(),
		kind:       kind,
		name:       strings.TrimSpace(name),
		zone:       strings.TrimSpace(zone),
		eventDate:  eventDate,
		capacity:   capacity,
		priceCents: priceCents,
		isActive:   true,
	}, nil
}

func ReconstructUnit(
	id uuid.UUID,
	kind Kind,
	name, zone string,
	eventDate *time.Time,
	capacity int,
	priceCents int64,
	isActive bool,
	committed int,
	createdAt, updatedAt time.Time,
) *Unit {
	return &Unit{
		id:         id,
		kind:       kind,
		name:       name,
		zone:       zone,
		eventDate:  eventDate,
		capacity:   capacity,
		priceCents: priceCents,
		isActive:   isActive,
		committed:  committed,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Available is capacity minus committed minus the given unexpired reservations,
// floored at zero.
func (u *Unit) Available(reserved int) int {
	avail := u.capacity - u.committed - reserved
	if avail < 0 {
		return 0
	}
	return avail
}

// Reserve checks that qty more units fit next to the current reservations.
func (u *Unit) Reserve(qty, reserved int) error {
	if !u.isActive {
		return ErrUnitInactive
	}
	if qty > u.Available(reserved) {
		return ErrCapacityExceeded
	}
	return nil
}

func validateUnitName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyUnitName
	}
	if len(name) > MaxUnitNameLength {
		return ErrUnitNameTooLong
	}
	return nil
}

func (u *Unit) ID() uuid.UUID         { return u.id }
func (u *Unit) Kind() Kind            { return u.kind }
func (u *Unit) Name() string          { return u.name }
func (u *Unit) Zone() string          { return u.zone }
func (u *Unit) EventDate() *time.Time { return u.eventDate }
func (u *Unit) Capacity() int         { return u.capacity }
func (u *Unit) PriceCents() int64     { return u.priceCents }
func (u *Unit) IsActive() bool        { return u.isActive }
func (u *Unit) Committed() int        { return u.committed }
func (u *Unit) CreatedAt() time.Time  { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time  { return u.updatedAt }
