package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims кладёт в токен только id администратора.
type Claims struct {
	AdminID uint `json:"id"`
	jwt.RegisteredClaims
}

func GenerateToken(adminID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
