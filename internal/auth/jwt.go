package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const unlockPurpose = "settings_unlock"

type UnlockClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateUnlockToken issues the short-lived token that authorizes toggling the
// reveal-purchase-price setting. It is the only credential the system has.
func GenerateUnlockToken(secret string) (string, error) {
	claims := &UnlockClaims{
		Purpose: unlockPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
