package order

import "github.com/google/uuid"

// ExpiryScope narrows which stale orders an expiry pass touches.
// The zero value means every stale order.
type ExpiryScope struct {
	OrderID *uuid.UUID
	OwnerID *uuid.UUID
	UnitIDs []uuid.UUID
}

func GlobalScope() ExpiryScope {
	return ExpiryScope{}
}

func OrderScope(id uuid.UUID) ExpiryScope {
	return ExpiryScope{OrderID: &id}
}

func OwnerScope(ownerID uuid.UUID) ExpiryScope {
	return ExpiryScope{OwnerID: &ownerID}
}

func UnitScope(unitIDs []uuid.UUID) ExpiryScope {
	return ExpiryScope{UnitIDs: unitIDs}
}

func (s ExpiryScope) IsGlobal() bool {
	return s.OrderID == nil && s.OwnerID == nil && len(s.UnitIDs) == 0
}
