package request

import (
	"time"

	"booking-core/internal/usecase/queries"
)

type ListUnitsQuery struct {
	Kind       *string `form:"kind" binding:"omitempty,oneof=table ticket_pool"`
	Zone       *string `form:"zone" binding:"omitempty,max=64"`
	EventDate  *string `form:"event_date" binding:"omitempty,datetime=2006-01-02"`
	IncludeAll bool    `form:"include_inactive"`
}

func (q ListUnitsQuery) ToFilter() queries.UnitFilter {
	f := queries.UnitFilter{
		Kind:       q.Kind,
		Zone:       q.Zone,
		ActiveOnly: !q.IncludeAll,
	}
	if q.EventDate != nil {
		if d, err := time.Parse(time.DateOnly, *q.EventDate); err == nil {
			f.EventDate = &d
		}
	}
	return f
}
