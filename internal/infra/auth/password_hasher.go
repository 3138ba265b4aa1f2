package auth

import (
	"strings"

	"tourbook/config"
	"tourbook/internal/domain/constants"
	"tourbook/internal/domain/service"
)

const argon2idPrefix = "$argon2id$"

// schemeHasher hashes with the configured scheme but verifies either scheme,
// so switching auth.passwordHasher does not lock out existing accounts.
type schemeHasher struct {
	primary service.PasswordHasher
	bcrypt  service.PasswordHasher
	argon2  service.PasswordHasher
}

// NewPasswordHasher builds the PasswordHasher selected by auth.passwordHasher.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	bcryptCost := 0
	scheme := constants.PasswordHasherBcrypt
	if cfg != nil && cfg.Auth != nil {
		bcryptCost = cfg.Auth.BcryptCost
		scheme = cfg.Auth.PasswordHasher
	}

	h := &schemeHasher{
		bcrypt: NewBcryptHasherWithCost(bcryptCost),
		argon2: NewArgon2Hasher(),
	}
	h.primary = h.bcrypt
	if strings.EqualFold(scheme, constants.PasswordHasherArgon2id) {
		h.primary = h.argon2
	}

	return h
}

func (h *schemeHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *schemeHasher) Check(password, hash string) bool {
	if strings.HasPrefix(hash, argon2idPrefix) {
		return h.argon2.Check(password, hash)
	}

	return h.bcrypt.Check(password, hash)
}
