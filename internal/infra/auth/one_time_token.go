package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"tourbook/internal/domain/service"
	"tourbook/internal/errors"
)

const oneTimeTokenBytes = 32

// oneTimeTokens issues 32-byte random tokens and stores only their SHA-256 digest.
type oneTimeTokens struct{}

// NewOneTimeTokenGenerator returns the generator used for reset and verification tokens.
func NewOneTimeTokenGenerator() service.OneTimeTokenGenerator {
	return oneTimeTokens{}
}

func (oneTimeTokens) Generate() (*service.OneTimeToken, error) {
	buf := make([]byte, oneTimeTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "failed to read random bytes")
	}

	plain := hex.EncodeToString(buf)

	return &service.OneTimeToken{Plain: plain, Digest: digest(plain)}, nil
}

func (oneTimeTokens) Digest(plain string) string {
	return digest(plain)
}

func digest(plain string) string {
	sum := sha256.Sum256([]byte(plain))

	return hex.EncodeToString(sum[:])
}
