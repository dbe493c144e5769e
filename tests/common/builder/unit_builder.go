//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/resource"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitBuilder struct {
	ID         uuid.UUID
	Kind       resource.Kind
	Name       string
	Zone       string
	EventDate  *time.Time
	Capacity   int
	PriceCents int64
	IsActive   bool
	Committed  int
}

func NewUnitBuilder() *UnitBuilder {
	eventDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	return &UnitBuilder{
		ID:         uuid.New(),
		Kind:       resource.KindTicketPool,
		Name:       "General Admission",
		Zone:       "A",
		EventDate:  &eventDate,
		Capacity:   100,
		PriceCents: 25000,
		IsActive:   true,
	}
}

func (u *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(u)
	return u
}

func (u *UnitBuilder) AsTable() *UnitBuilder {
	u.Kind = resource.KindTable
	u.Name = "Table 1"
	u.Capacity = 1
	return u
}

func (u *UnitBuilder) Free() *UnitBuilder {
	u.PriceCents = 0
	return u
}

func (u *UnitBuilder) WithCapacity(capacity int) *UnitBuilder {
	u.Capacity = capacity
	return u
}

func (u *UnitBuilder) WithPrice(cents int64) *UnitBuilder {
	u.PriceCents = cents
	return u
}

func (u *UnitBuilder) WithCommitted(committed int) *UnitBuilder {
	u.Committed = committed
	return u
}

func (u *UnitBuilder) Inactive() *UnitBuilder {
	u.IsActive = false
	return u
}

// Build methods
func (u *UnitBuilder) BuildDomain() *resource.Unit {
	now := time.Now()
	return resource.ReconstructUnit(u.ID, u.Kind, u.Name, u.Zone, u.EventDate,
		u.Capacity, u.PriceCents, u.IsActive, u.Committed, now, now)
}

func (u *UnitBuilder) BuildView(reserved int) *queries.UnitView {
	return &queries.UnitView{
		ID:         u.ID,
		Kind:       string(u.Kind),
		Name:       u.Name,
		Zone:       u.Zone,
		EventDate:  u.EventDate,
		Capacity:   u.Capacity,
		PriceCents: u.PriceCents,
		IsActive:   u.IsActive,
		Committed:  u.Committed,
		Reserved:   reserved,
		Available:  max(u.Capacity-u.Committed-reserved, 0),
	}
}
