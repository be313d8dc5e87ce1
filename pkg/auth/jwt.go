// pkg/auth/jwt.go
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the console reads from the backend-issued bearer token.
// The signature is never checked here: the backend is the only verifier.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

func ParseUnverified(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, errors.New("empty token")
	}
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// DisplayName returns the best human-readable identity carried by the token.
// Opaque (non-JWT) tokens yield fallback.
func DisplayName(tokenStr, fallback string) string {
	claims, err := ParseUnverified(tokenStr)
	if err != nil {
		return fallback
	}
	if claims.Email != "" {
		return claims.Email
	}
	if claims.Subject != "" {
		return claims.Subject
	}
	return fallback
}
