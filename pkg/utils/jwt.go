package utils

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtKey []byte

// InitJWT installs the signing secret from configuration. It must run
// before any token is issued or verified; reading the env var at
// package init would race .env loading, which only happens in main.
func InitJWT(secret string) {
	jwtKey = []byte(secret)
}

type Claims struct {
	AccountClass string `json:"account_class"`
	jwt.RegisteredClaims
}

// CreateToken signs a token for an account. The class claim carries
// which collection ("admin" or "member") the id belongs to, since ids
// alone are ambiguous across the two tables.
func CreateToken(accountID uint, accountClass string) (string, error) {
	claims := &Claims{
		AccountClass: accountClass,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(accountID), 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 12)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
