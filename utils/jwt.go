package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues a signed token for the user. A "remember me" login
// gets a 90 day token, a normal login expires after an hour.
func GenerateJWT(userID uint, username string, rememberMe bool) (string, error) {
	expiresIn := time.Hour
	if rememberMe {
		expiresIn = 90 * 24 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"exp":      time.Now().Add(expiresIn).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
