package usecase

import (
	"booking-core/internal/domain/user"
	"booking-core/internal/pkg/jwt"
)

// TokenValidator turns an identity-provider token into the caller's principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (*user.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*user.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return user.NewPrincipal(claims.UserID.String(), claims.Role)
}
