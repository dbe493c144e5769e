package response

import (
	"time"

	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UnitResponse struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	Name       string     `json:"name"`
	Zone       string     `json:"zone"`
	EventDate  *time.Time `json:"eventDate,omitempty"`
	Capacity   int        `json:"capacity"`
	PriceCents int64      `json:"priceCents"`
	IsActive   bool       `json:"isActive"`
	Committed  int        `json:"committed"`
	Reserved   int        `json:"reserved"`
	Available  int        `json:"available"`
}

func FromUnitView(v *queries.UnitView) (*UnitResponse, error) {
	var res UnitResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromUnitViews(vs []*queries.UnitView) ([]*UnitResponse, error) {
	out := make([]*UnitResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}
