package auth

import (
	"github.com/alexedwards/argon2id"

	"tourbook/internal/domain/service"
	"tourbook/internal/errors"
)

// argon2Hasher implements PasswordHasher with argon2id and the library's default parameters.
type argon2Hasher struct {
	params *argon2id.Params
}

// NewArgon2Hasher creates an argon2id hasher.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{params: argon2id.DefaultParams}
}

// Hash generates an encoded argon2id hash including its parameters and salt.
func (h *argon2Hasher) Hash(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, h.params)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return hash, nil
}

// Check compares a plaintext password with an encoded argon2id hash.
func (h *argon2Hasher) Check(password, hash string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, hash)

	return err == nil && match
}
