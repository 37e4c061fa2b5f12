package ports

import (
	"user-service/internal/infrastructure/jwt"
)

type TokenValidator interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}
