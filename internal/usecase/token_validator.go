package usecase

import (
	"venue-desk/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token to the operator login.
type TokenValidator interface {
	ValidateToken(tokenString string) (login string, err error)
}

type operatorTokens struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return operatorTokens{jwtService: jwtService}
}

func (o operatorTokens) ValidateToken(tokenString string) (string, error) {
	claims, err := o.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Role != jwt.RoleOperator {
		return "", jwt.ErrInvalidToken
	}
	return claims.Login, nil
}
