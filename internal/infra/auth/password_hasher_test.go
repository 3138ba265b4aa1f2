package auth

import (
	"strings"
	"testing"

	"tourbook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("pass1234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, argon2idPrefix))

	assert.True(t, hasher.Check("pass1234", hash))
	assert.False(t, hasher.Check("wrong-pass", hash))
	assert.False(t, hasher.Check("pass1234", "not-a-hash"))
}

func TestNewPasswordHasher_SelectsScheme(t *testing.T) {
	argonCfg := &config.Config{Auth: &config.AuthConfig{PasswordHasher: "argon2id"}}
	hash, err := NewPasswordHasher(argonCfg).Hash("pass1234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, argon2idPrefix))

	bcryptCfg := &config.Config{Auth: &config.AuthConfig{PasswordHasher: "bcrypt", BcryptCost: bcrypt.MinCost}}
	hash, err = NewPasswordHasher(bcryptCfg).Hash("pass1234")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewPasswordHasher_VerifiesEitherScheme(t *testing.T) {
	bcryptHash, err := NewBcryptHasherWithCost(bcrypt.MinCost).Hash("pass1234")
	require.NoError(t, err)
	argonHash, err := NewArgon2Hasher().Hash("pass1234")
	require.NoError(t, err)

	hasher := NewPasswordHasher(&config.Config{Auth: &config.AuthConfig{PasswordHasher: "argon2id"}})
	assert.True(t, hasher.Check("pass1234", bcryptHash))
	assert.True(t, hasher.Check("pass1234", argonHash))
	assert.False(t, hasher.Check("nope1234", bcryptHash))
}
