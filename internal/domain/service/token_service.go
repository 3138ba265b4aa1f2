package service

import (
	"errors"
	"time"
)

// Token validation outcomes the access gate distinguishes.
var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs a token whose subject is userID.
	GenerateToken(userID string) (string, error)

	// ValidateToken verifies signature and expiry, returning ErrTokenInvalid or ErrTokenExpired.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns how long issued tokens stay valid.
	TokenTTL() time.Duration
}

// OneTimeToken is a random secret mailed to a user; only Digest is stored.
type OneTimeToken struct {
	Plain  string
	Digest string
}

// OneTimeTokenGenerator creates and digests single-use tokens for password reset and email verification.
type OneTimeTokenGenerator interface {
	// Generate returns a fresh random token and its digest.
	Generate() (*OneTimeToken, error)

	// Digest hashes a token received from a client for lookup.
	Digest(plain string) string
}
