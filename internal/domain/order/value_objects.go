package order

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount   = errors.New("money cannot be negative")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidProofRef  = errors.New("invalid payment proof reference")
	ErrQuantityTooLarge = errors.New("quantity exceeds per-line limit")
)

const MaxProofRefLength = 128

// DefaultAmountEpsilon is the tolerance for claimed payment amounts.
var DefaultAmountEpsilon = decimal.RequireFromString("0.01")

// Money is an amount in the smallest currency unit (satang).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// Decimal returns the amount in major units, e.g. 150.00.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Matches reports whether a claimed major-unit amount is within epsilon of m,
// inclusive. A zero epsilon demands an exact amount.
func (m Money) Matches(claimed decimal.Decimal, epsilon decimal.Decimal) bool {
	return claimed.Sub(m.Decimal()).Abs().LessThanOrEqual(epsilon)
}

// Line is one requested unit and quantity with the unit price captured at hold time.
type Line struct {
	unitID    uuid.UUID
	quantity  int
	unitPrice Money
}

func NewLine(unitID uuid.UUID, quantity int, unitPrice Money) (Line, error) {
	if quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	return Line{unitID: unitID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l Line) UnitID() uuid.UUID { return l.unitID }
func (l Line) Quantity() int     { return l.quantity }
func (l Line) UnitPrice() Money  { return l.unitPrice }

func (l Line) Subtotal() Money {
	return l.unitPrice.Times(l.quantity)
}

// ProofRef is the opaque reference of an external payment proof (slip transaction id).
type ProofRef struct {
	value string
}

func NewProofRef(value string) (ProofRef, error) {
	v := strings.TrimSpace(value)
	if v == "" || len(v) > MaxProofRefLength {
		return ProofRef{}, ErrInvalidProofRef
	}
	return ProofRef{value: v}, nil
}

func (p ProofRef) String() string {
	return p.value
}

func (p ProofRef) IsZero() bool {
	return p.value == ""
}
