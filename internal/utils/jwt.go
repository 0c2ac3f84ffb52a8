package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// TokenIdentity is the principal embedded in an access token: the user's
// document id and username. Tokens carry no expiry; possession of a
// signed token is a standing credential until the signing secret rotates.
type TokenIdentity struct {
	ID       string
	Username string
}

// ErrInvalidToken is returned by ParseAccessToken for any token that does
// not carry a valid HS256 signature under the given secret.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT embedding the user's id
// and username, plus an issued-at claim.
func NewAccessToken(secret string, ident TokenIdentity) (string, error) {
	claims := jwt.MapClaims{
		"id":       ident.ID,
		"username": ident.Username,
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken validates the signature of a raw token string and
// extracts the embedded identity. Only HMAC-signed tokens are accepted.
func ParseAccessToken(secret, raw string) (TokenIdentity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenIdentity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenIdentity{}, ErrInvalidToken
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" || username == "" {
		return TokenIdentity{}, ErrInvalidToken
	}
	return TokenIdentity{ID: id, Username: username}, nil
}
