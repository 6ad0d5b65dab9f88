package helpers

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpired reports whether a cached bearer token is already past its
// JWT expiry. The token is otherwise opaque to this layer: no signature
// check happens here (we don't hold the signing key), and a token that
// doesn't parse as a JWT is passed through for the backend to judge.
func TokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(time.Now())
}
