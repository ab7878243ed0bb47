package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, mis-signed or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the session token payload.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	// Issue creates a signed token for the user, valid for TTL().
	Issue(userID int64) (string, error)

	// Verify checks signature and expiry and returns the embedded user ID.
	Verify(token string) (int64, error)

	// TTL returns the validity window of issued tokens.
	TTL() time.Duration
}
