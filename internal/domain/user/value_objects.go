package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidUserID = errors.New("invalid user id")
)

func ParseUserID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidUserID
	}
	return id, nil
}
