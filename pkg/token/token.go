package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// ClaimExpiresAtKey is the key for the standard expiration time claim.
	ClaimExpiresAtKey = "exp"
)

var (
	// ErrNotJWT is returned when the token is not JWT-shaped. Opaque tokens
	// are a normal condition for issuers that do not mint JWTs.
	ErrNotJWT = errors.New("token is not a JWT")
	// ErrNoExpiry is returned when the token carries no expiration claim.
	ErrNoExpiry = errors.New("token has no expiration claim")
)

// Claims extracts the claims of a JWT-shaped token without verifying its
// signature. The client never holds the issuer's signing secret, so the
// claims are diagnostic only and must not be used to make trust decisions.
func Claims(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrNotJWT
	}

	return claims, nil
}

// ExpiresAt extracts the expiration time of a JWT-shaped token without
// verifying its signature.
func ExpiresAt(tokenString string) (time.Time, error) {
	claims, err := Claims(tokenString)
	if err != nil {
		return time.Time{}, err
	}

	expiresAt, ok := claims[ClaimExpiresAtKey].(float64)
	if !ok {
		return time.Time{}, ErrNoExpiry
	}

	return time.Unix(int64(expiresAt), 0), nil
}
