package user

import (
	"github.com/google/uuid"
)

// Principal is a caller identity asserted by the external identity provider.
// Accounts are not stored locally.
type Principal struct {
	id   uuid.UUID
	role Role
}

func NewPrincipal(rawID, rawRole string) (*Principal, error) {
	id, err := ParseUserID(rawID)
	if err != nil {
		return nil, err
	}
	role, err := NewRole(rawRole)
	if err != nil {
		return nil, err
	}
	return &Principal{id: id, role: role}, nil
}

func (p *Principal) ID() uuid.UUID { return p.id }
func (p *Principal) Role() Role    { return p.role }

func (p *Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}
