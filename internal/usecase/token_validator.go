package usecase

import (
	"staybook/internal/domain/user"
	"staybook/internal/pkg/jwt"
	"staybook/internal/usecase/shared"
)

// TokenValidator turns a bearer token into the caller identity for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return shared.Actor{}, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, jwt.ErrInvalidToken
	}

	return shared.Actor{UserID: userID, Role: role}, nil
}
