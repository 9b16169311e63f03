package usecase

import (
	"queue-engine/internal/domain/staff"
	"queue-engine/internal/pkg/jwt"
)

// TokenValidator provides staff token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (staff.Member, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (staff.Member, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return staff.Member{}, err
	}
	return claims.Member()
}
