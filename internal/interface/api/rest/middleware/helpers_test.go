package middleware

import (
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

func signRaw(secret, userID string) (string, error) {
	claims := jwtv5.MapClaims{
		"user_id": userID,
		"role":    2,
		"exp":     time.Now().Add(time.Minute).Unix(),
	}
	return jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString([]byte(secret))
}
