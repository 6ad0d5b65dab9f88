package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	expired := signToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	live := signToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noExpiry := signToken(t, jwt.RegisteredClaims{Subject: "u1"})

	assert.True(t, TokenExpired(expired))
	assert.False(t, TokenExpired(live))
	assert.False(t, TokenExpired(noExpiry), "a token with no exp claim never expires locally")
	assert.False(t, TokenExpired("not-a-jwt"), "opaque tokens are left for the backend to judge")
}
