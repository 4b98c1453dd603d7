package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

const (
	testSecret      = "testsecret123"
	testChannelName = "lobby"
)

func generateTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return tokenString
}

func TestClaims(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Unix()
	tokenString := generateTestToken(t, jwt.MapClaims{
		"channelName":     testChannelName,
		ClaimExpiresAtKey: expiresAt,
	})

	claims, err := Claims(tokenString)
	require.NoError(t, err)
	require.Equal(t, testChannelName, claims["channelName"])
	require.Equal(t, float64(expiresAt), claims[ClaimExpiresAtKey])
}

func TestClaimsOpaqueToken(t *testing.T) {
	_, err := Claims("abc123")
	require.ErrorIs(t, err, ErrNotJWT)
}

func TestExpiresAt(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Unix()
	tokenString := generateTestToken(t, jwt.MapClaims{
		ClaimExpiresAtKey: expiresAt,
	})

	got, err := ExpiresAt(tokenString)
	require.NoError(t, err)
	require.Equal(t, time.Unix(expiresAt, 0), got)
}

func TestExpiresAtNoExpiry(t *testing.T) {
	tokenString := generateTestToken(t, jwt.MapClaims{
		"channelName": testChannelName,
	})

	_, err := ExpiresAt(tokenString)
	require.ErrorIs(t, err, ErrNoExpiry)
}

func TestExpiresAtOpaqueToken(t *testing.T) {
	_, err := ExpiresAt("abc123")
	require.ErrorIs(t, err, ErrNotJWT)
}
